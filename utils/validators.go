package utils

import (
	"regexp"
	"time"

	"task-manager/domain/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var TaskStatuses = []string{models.StatusPending, models.StatusInProgress, models.StatusCompleted}

var taskStatusValidator validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	for _, s := range TaskStatuses {
		if status == s {
			return true
		}
	}
	return false
}

var dayFormatValidator validator.Func = func(fl validator.FieldLevel) bool {
	dateStr, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	_, err := time.Parse(models.DayDateFmt, dateStr)
	return err == nil
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var hexColorValidator validator.Func = func(fl validator.FieldLevel) bool {
	color, ok := fl.Field().Interface().(string)
	if !ok {
		return true
	}
	return hexColorRegex.MatchString(color)
}

var strongPasswordValidator validator.Func = func(fl validator.FieldLevel) bool {
	password, ok := fl.Field().Interface().(string)
	if ok {
		var (
			lengthValid      = len(password) >= 8 && len(password) <= 20 // 8-20 characters
			lowercaseRegex   = regexp.MustCompile(`[a-z]`)               // At least one lowercase
			uppercaseRegex   = regexp.MustCompile(`[A-Z]`)               // At least one uppercase
			digitRegex       = regexp.MustCompile(`\d`)                  // At least one digit
			specialCharRegex = regexp.MustCompile(`[!@#$%^&*()-_+=<>?]`) // At least one special character
		)

		return lengthValid &&
			lowercaseRegex.MatchString(password) &&
			uppercaseRegex.MatchString(password) &&
			digitRegex.MatchString(password) &&
			specialCharRegex.MatchString(password)
	}
	return true
}

func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taskStatus", taskStatusValidator)
		v.RegisterValidation("dayFormat", dayFormatValidator)
		v.RegisterValidation("hexColor", hexColorValidator)
		v.RegisterValidation("strongpass", strongPasswordValidator)
	}
}
