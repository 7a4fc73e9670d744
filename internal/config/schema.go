package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Oudwins/zog/zconst"

	z "github.com/Oudwins/zog"

	"github.com/sushichan044/docfill"
)

// ConfigSchemaType validates Config and returns zog issues.
type ConfigSchemaType interface {
	Validate(config *Config) z.ZogIssueList
}

// ConfigSchema validates Config using zog schemas + fragment rules.
var ConfigSchema ConfigSchemaType = defaultConfigSchema{}

type defaultConfigSchema struct{}

const (
	msgSyntaxUnknown          = "syntax must be one of: percent, brace"
	msgTabWidthNegative       = "tab_width must not be negative"
	msgFragmentsRequired      = "fragments are required"
	msgFragmentNameRequired   = "fragment name is required"
	msgFragmentNameNotString  = "fragment name must be a string"
	msgFragmentNameHasSpace   = "fragment name must not contain spaces"
	msgFragmentNameDelimiter  = "fragment name must not contain placeholder delimiters"
	msgFragmentValueNotString = "fragment must be a string"
	msgFragmentNameDuplicated = "fragment name is duplicated"
	placeholderDelimiterChars = "%(){}"
	whitespaceChars           = " \t\n\r"
)

var configBaseSchema = z.Struct(z.Shape{
	"syntax": z.String().
		TestFunc(func(val *string, _ z.Ctx) bool {
			_, err := docfill.ParseSyntax(*val)
			return err == nil
		}, z.Message(msgSyntaxUnknown)),
	"tabWidth": z.Int().
		TestFunc(func(val *int, _ z.Ctx) bool {
			return *val >= 0
		}, z.Message(msgTabWidthNegative)),
})

var fragmentNameSchema = z.String().
	Required(z.Message(msgFragmentNameRequired)).
	TestFunc(func(val *string, _ z.Ctx) bool {
		return strings.TrimSpace(*val) != ""
	}, z.Message(msgFragmentNameRequired)).
	TestFunc(func(val *string, _ z.Ctx) bool {
		return !strings.ContainsAny(*val, whitespaceChars)
	}, z.Message(msgFragmentNameHasSpace)).
	TestFunc(func(val *string, _ z.Ctx) bool {
		return !strings.ContainsAny(*val, placeholderDelimiterChars)
	}, z.Message(msgFragmentNameDelimiter))

func (defaultConfigSchema) Validate(config *Config) z.ZogIssueList {
	if config == nil {
		return z.ZogIssueList{newCustomIssue(nil, "config is nil")}
	}

	issues := make(z.ZogIssueList, 0)
	issues = append(issues, configBaseSchema.Validate(config)...)
	issues = append(issues, validateFragments(config)...)

	sort.SliceStable(issues, func(i, j int) bool {
		lhsPath := issues[i].PathString()
		rhsPath := issues[j].PathString()
		if lhsPath != rhsPath {
			return lhsPath < rhsPath
		}
		return issues[i].Message < issues[j].Message
	})

	return issues
}

func validateFragments(config *Config) z.ZogIssueList {
	issues := make(z.ZogIssueList, 0)
	if len(config.Fragments) == 0 {
		return append(issues, newCustomIssue([]string{"fragments"}, msgFragmentsRequired))
	}

	seen := make(map[string]struct{}, len(config.Fragments))
	for i, item := range config.Fragments {
		name, ok := item.Key.(string)
		if !ok {
			path := []string{"fragments", fmt.Sprintf("[%d]", i)}
			issues = append(issues, newCustomIssue(path, msgFragmentNameNotString))
			continue
		}
		path := []string{"fragments", bracketKey(name)}

		for _, issue := range fragmentNameSchema.Validate(&name) {
			issues = append(issues, newCustomIssue(path, issue.Message))
		}
		if _, dup := seen[name]; dup {
			issues = append(issues, newCustomIssue(path, msgFragmentNameDuplicated))
		}
		seen[name] = struct{}{}

		if _, isString := item.Value.(string); !isString {
			issues = append(issues, newCustomIssue(path, msgFragmentValueNotString))
		}
	}

	return issues
}

func bracketKey(key string) string {
	return `["` + key + `"]`
}

func newCustomIssue(path []string, message string) *z.ZogIssue {
	return (&z.ZogIssue{}).
		SetCode(zconst.IssueCodeCustom).
		SetPath(path).
		SetMessage(message)
}

type validationIssueError struct {
	issue *z.ZogIssue
}

func newValidationIssueError(issue *z.ZogIssue) error {
	return validationIssueError{issue: issue}
}

func (e validationIssueError) Error() string {
	if e.issue == nil {
		return "invalid config"
	}

	msg := e.issue.Message
	if msg == "" {
		msg = e.issue.Error()
	}

	path := e.issue.PathString()
	if path == "" {
		return msg
	}

	return path + ": " + msg
}

func (e validationIssueError) Unwrap() error {
	return e.issue
}
