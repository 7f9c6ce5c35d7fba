package tui

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/order"
	"github.com/goliatone/go-orderform/pkg/render"
	"github.com/goliatone/go-orderform/pkg/renderers/text"
)

// Session walks a user through the order form in the terminal. All state lives
// in the controller; the session only turns prompt answers into field events.
type Session struct {
	controller *form.Controller
	catalog    order.Catalog
	driver     PromptDriver
	summary    render.Renderer
	theme      Theme
	title      string
	logger     *zap.Logger
}

// New constructs a session over controller offering the toppings in catalog.
// The survey driver is used unless WithPromptDriver says otherwise.
func New(controller *form.Controller, catalog order.Catalog, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, ErrControllerRequired
	}
	if catalog.Len() == 0 {
		catalog = order.DefaultCatalog()
	}

	s := &Session{
		controller: controller,
		catalog:    catalog,
		summary:    text.New(),
		theme:      DefaultTheme(),
		title:      render.DefaultTitle,
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts for every field, shows a summary and submits on confirmation.
// After a failed submission the user may edit the order again with the
// previous answers as defaults. It returns the last outcome; declining to
// submit returns the idle outcome. Interrupts surface as ErrAborted.
func (s *Session) Run(ctx context.Context) (form.Outcome, error) {
	if err := s.driver.Info(ctx, s.title); err != nil {
		return form.Outcome{}, err
	}

	for {
		if err := s.promptFullName(ctx); err != nil {
			return form.Outcome{}, err
		}
		if err := s.promptSize(ctx); err != nil {
			return form.Outcome{}, err
		}
		if err := s.promptToppings(ctx); err != nil {
			return form.Outcome{}, err
		}

		snap := s.controller.Snapshot()
		if err := s.showSummary(ctx, snap); err != nil {
			return form.Outcome{}, err
		}
		if !snap.CanSubmit {
			if err := s.info(ctx, s.theme.ErrorPrefix, "The order is not complete yet."); err != nil {
				return form.Outcome{}, err
			}
			continue
		}

		place, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Place this order?", Default: true})
		if err != nil {
			return form.Outcome{}, err
		}
		if !place {
			return s.controller.Snapshot().Outcome, nil
		}

		outcome, err := s.controller.Submit(ctx)
		if err != nil {
			return form.Outcome{}, fmt.Errorf("tui: submit: %w", err)
		}

		if outcome.IsSuccess() {
			return outcome, s.info(ctx, s.theme.SuccessPrefix, outcome.Message)
		}
		if err := s.info(ctx, s.theme.ErrorPrefix, outcome.Message); err != nil {
			return outcome, err
		}

		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Edit the order and try again?", Default: true})
		if err != nil {
			return outcome, err
		}
		if !again {
			return outcome, nil
		}
		s.logger.Debug("retrying order after failure")
	}
}

func (s *Session) promptFullName(ctx context.Context) error {
	for {
		current := s.controller.Snapshot().Draft.FullName
		value, err := s.driver.Input(ctx, InputConfig{
			Message: "Full Name",
			Default: current,
			Help:    "Type full name",
		})
		if err != nil {
			return err
		}

		s.controller.SetFullName(value)
		msg := s.controller.Snapshot().Errors.Get(order.FieldFullName)
		if msg == "" {
			return nil
		}
		if err := s.info(ctx, s.theme.ErrorPrefix, msg); err != nil {
			return err
		}
	}
}

func (s *Session) promptSize(ctx context.Context) error {
	sizes := order.Sizes()
	options := make([]string, len(sizes))
	for i, opt := range sizes {
		options[i] = opt.Label
	}

	for {
		current := s.controller.Snapshot().Draft.Size
		defaultIdx := -1
		for i, opt := range sizes {
			if opt.Value == current {
				defaultIdx = i
			}
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      "Size",
			Options:      options,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return err
		}

		value := ""
		if idx >= 0 && idx < len(sizes) {
			value = string(sizes[idx].Value)
		}
		s.controller.SetSize(value)
		msg := s.controller.Snapshot().Errors.Get(order.FieldSize)
		if msg == "" {
			return nil
		}
		if err := s.info(ctx, s.theme.ErrorPrefix, msg); err != nil {
			return err
		}
	}
}

func (s *Session) promptToppings(ctx context.Context) error {
	toppings := s.catalog.Toppings()
	options := make([]string, len(toppings))
	var defaults []int
	draft := s.controller.Snapshot().Draft
	for i, t := range toppings {
		options[i] = t.Label
		if draft.HasTopping(t.ID) {
			defaults = append(defaults, i)
		}
	}

	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Toppings",
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}

	selected := make(map[int]struct{}, len(picked))
	for _, idx := range picked {
		selected[idx] = struct{}{}
	}
	for i, t := range toppings {
		_, on := selected[i]
		if on != draft.HasTopping(t.ID) {
			s.controller.ToggleTopping(t.ID, on)
		}
	}
	return nil
}

func (s *Session) showSummary(ctx context.Context, snap form.Snapshot) error {
	out, err := s.summary.Render(ctx, snap, render.RenderOptions{Catalog: s.catalog, Title: "Your order"})
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

func (s *Session) info(ctx context.Context, prefix, msg string) error {
	return s.driver.Info(ctx, prefix+msg)
}
