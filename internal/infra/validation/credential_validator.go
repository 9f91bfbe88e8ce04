// Package validation implements the credential format policy with go-playground/validator.
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"garden/config"
	"garden/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// bcrypt rejects passwords longer than this many bytes.
const maxPasswordBytes = 72

type rule struct {
	tag     string
	message string
}

// credentialValidator checks each rule separately so every violation is reported.
type credentialValidator struct {
	validate      *validator.Validate
	usernameRules []rule
	passwordRules []rule
}

// NewCredentialValidator builds the validator from credentialPolicy.
func NewCredentialValidator(cfg *config.Config) service.CredentialValidator {
	policy := config.DefaultCredentialPolicy()
	if cfg != nil && cfg.CredentialPolicy != nil {
		policy = cfg.CredentialPolicy
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("has_letter", func(fl validator.FieldLevel) bool {
		return containsRune(fl.Field().String(), unicode.IsLetter)
	})
	_ = validate.RegisterValidation("hashable", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	_ = validate.RegisterValidation("has_number", func(fl validator.FieldLevel) bool {
		return containsRune(fl.Field().String(), unicode.IsDigit)
	})

	usernameRules := []rule{
		{
			tag: fmt.Sprintf("min=%d,max=%d", policy.UsernameMinLength, policy.UsernameMaxLength),
			message: fmt.Sprintf("Username must be between %d and %d characters",
				policy.UsernameMinLength, policy.UsernameMaxLength),
		},
		{tag: "username_chars", message: "Username may only contain letters, numbers, '.', '_' and '-'"},
	}

	passwordRules := []rule{
		{
			tag: fmt.Sprintf("min=%d,max=%d", policy.PasswordMinLength, policy.PasswordMaxLength),
			message: fmt.Sprintf("Password must be between %d and %d characters",
				policy.PasswordMinLength, policy.PasswordMaxLength),
		},
	}
	passwordRules = append(passwordRules, rule{
		tag:     "hashable",
		message: fmt.Sprintf("Password must not exceed %d bytes", maxPasswordBytes),
	})
	if policy.RequireLetter {
		passwordRules = append(passwordRules, rule{tag: "has_letter", message: "Password must contain at least one letter"})
	}
	if policy.RequireNumber {
		passwordRules = append(passwordRules, rule{tag: "has_number", message: "Password must contain at least one number"})
	}

	return &credentialValidator{
		validate:      validate,
		usernameRules: usernameRules,
		passwordRules: passwordRules,
	}
}

// ValidateRegistration applies the full policy to both fields.
func (v *credentialValidator) ValidateRegistration(username, password string) []string {
	var errs []string
	errs = append(errs, v.check(username, "Username is required", v.usernameRules)...)
	errs = append(errs, v.check(password, "Password is required", v.passwordRules)...)

	return errs
}

// ValidateLogin only requires both fields to be present.
func (v *credentialValidator) ValidateLogin(username, password string) []string {
	var errs []string
	errs = append(errs, v.check(username, "Username is required", nil)...)
	errs = append(errs, v.check(password, "Password is required", nil)...)

	return errs
}

// check reports the required message alone for an empty value, otherwise one message per failed rule.
func (v *credentialValidator) check(value, requiredMessage string, rules []rule) []string {
	if err := v.validate.Var(value, "required"); err != nil {
		return []string{requiredMessage}
	}

	var errs []string
	for _, r := range rules {
		if err := v.validate.Var(value, r.tag); err != nil {
			errs = append(errs, r.message)
		}
	}

	return errs
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
