package forms

import (
	"github.com/go-playground/validator/v10"
)

// ReviewForm carries the two user-editable review fields. The same shape
// serves register and edit; house and author are never form input.
type ReviewForm struct {
	Score   int    `form:"score" binding:"required,min=1,max=5"`
	Content string `form:"content" binding:"required,max=300"`
}

var reviewFieldMessages = map[string]string{
	"Score.required":   "Please choose a score.",
	"Score.min":        "Score must be between 1 and 5.",
	"Score.max":        "Score must be between 1 and 5.",
	"Content.required": "Please write a comment.",
	"Content.max":      "Comment must be 300 characters or less.",
}

// FieldErrors turns a binding error into a field -> message map for form
// re-display. Non-validator errors (bad types and the like) come back
// under the "form" key so the page still has something to show.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "The submitted values could not be read."
		return out
	}

	for _, fe := range validationErrors {
		if msg, ok := reviewFieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			out[fe.Field()] = msg
		} else {
			out[fe.Field()] = "Invalid value."
		}
	}
	return out
}
