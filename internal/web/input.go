package web

import "github.com/goliatone/go-orderform/pkg/form"

// FormInput is the urlencoded body posted by the form page.
type FormInput struct {
	FullName string   `form:"fullName"`
	Size     string   `form:"size"`
	Toppings []string `form:"toppings"`
}

// Apply replays the input as field events on ctrl.
func (in FormInput) Apply(ctrl *form.Controller) {
	ctrl.SetFullName(in.FullName)
	ctrl.SetSize(in.Size)
	for _, id := range in.Toppings {
		ctrl.ToggleTopping(id, true)
	}
}
