package explore

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Profile is what a learner tells the exploration step about themselves.
type Profile struct {
	Goal        string        `json:"goal" yaml:"goal" validate:"required"`
	Skills      CurrentSkills `json:"current_skills" yaml:"current_skills"`
	Traits      Traits        `json:"traits" yaml:"traits"`
	Preferences Preferences   `json:"exploration_preferences" yaml:"exploration_preferences"`
}

type CurrentSkills struct {
	ProgrammingLanguages map[string]int `json:"programming_languages,omitempty" yaml:"programming_languages,omitempty" validate:"dive,min=0,max=10"`
	Frameworks           []string       `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	Mathematics          map[string]int `json:"mathematics,omitempty" yaml:"mathematics,omitempty" validate:"dive,min=0,max=10"`
	DataSkills           []string       `json:"data_skills,omitempty" yaml:"data_skills,omitempty"`
}

// Traits are self-assessed scores on a 0-10 scale plus free-form interests.
type Traits struct {
	ProblemSolving   int    `json:"problem_solving" yaml:"problem_solving" validate:"min=0,max=10"`
	CreativeThinking int    `json:"creative_thinking" yaml:"creative_thinking" validate:"min=0,max=10"`
	Communication    int    `json:"communication" yaml:"communication" validate:"min=0,max=10"`
	InterestArea     string `json:"interest_area,omitempty" yaml:"interest_area,omitempty"`
	LearningStyle    string `json:"learning_style,omitempty" yaml:"learning_style,omitempty"`
}

type Preferences struct {
	TestSubskills           bool `json:"test_subskills" yaml:"test_subskills"`
	ProvideAssessmentLinks  bool `json:"provide_links_for_assessment" yaml:"provide_links_for_assessment"`
	SuggestAlternativeRoles bool `json:"suggest_alternative_roles" yaml:"suggest_alternative_roles"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// Validate reports every problem with the profile as a
// *domain.MalformedInputError.
func (p Profile) Validate() error {
	p.Goal = strings.TrimSpace(p.Goal)
	err := validate.Struct(&p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Profile.")
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", field))
		case "min", "max":
			problems = append(problems, fmt.Sprintf("%s must be between 0 and 10", field))
		default:
			problems = append(problems, fmt.Sprintf("%s: failed %q check", field, fe.Tag()))
		}
	}
	return &domain.MalformedInputError{Problems: problems}
}
