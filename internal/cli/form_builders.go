package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/afontana/shopfloor/internal/cli/formatter"
	"github.com/afontana/shopfloor/internal/contract"
	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/schedule"
)

func shopfloorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequiredDate accepts a YYYY-MM-DD date.
func validateRequiredDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateRequiredDate(s)
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func materialSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Material").
		Options(
			huh.NewOption("A", string(domain.MaterialA)),
			huh.NewOption("B", string(domain.MaterialB)),
		).
		Value(value)
}

func structureSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Structure type").
		Options(
			huh.NewOption("hinged", string(domain.StructureHinged)),
			huh.NewOption("sliding", string(domain.StructureSliding)),
			huh.NewOption("special", string(domain.StructureSpecial)),
		).
		Value(value)
}

// runOrderForm collects group fields and at least one line interactively.
// Flag values already present on the request are kept and not asked again.
func runOrderForm(req contract.NewGroupRequest) (contract.NewGroupRequest, error) {
	startStr := ""
	if !req.StartDate.IsZero() {
		startStr = req.StartDate.Format("2006-01-02")
	}
	requestedStr := ""
	if req.RequestedDelivery != nil {
		requestedStr = req.RequestedDelivery.Format("2006-01-02")
	}

	var groupFields []huh.Field
	if req.Client == "" {
		groupFields = append(groupFields, huh.NewInput().
			Title("Client").
			Value(&req.Client).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("client is required")
				}
				return nil
			}))
	}
	if req.Product == "" {
		groupFields = append(groupFields, huh.NewInput().
			Title("Product").
			Value(&req.Product).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("product is required")
				}
				return nil
			}))
	}
	if startStr == "" {
		groupFields = append(groupFields, huh.NewInput().
			Title("Start date (YYYY-MM-DD)").
			Placeholder("2025-06-16").
			Value(&startStr).
			Validate(validateRequiredDate))
	}
	if requestedStr == "" {
		groupFields = append(groupFields, huh.NewInput().
			Title("Requested delivery (YYYY-MM-DD, blank for none)").
			Value(&requestedStr).
			Validate(validateOptionalDate))
	}

	if len(groupFields) > 0 {
		form := huh.NewForm(huh.NewGroup(groupFields...)).
			WithTheme(shopfloorHuhTheme()).
			WithShowHelp(false)
		if err := form.Run(); err != nil {
			return req, err
		}
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return req, fmt.Errorf("invalid start date %q: %w", startStr, err)
	}
	req.StartDate = schedule.DateOnly(start)
	if requestedStr != "" {
		requested, err := time.Parse("2006-01-02", requestedStr)
		if err != nil {
			return req, fmt.Errorf("invalid requested delivery %q: %w", requestedStr, err)
		}
		d := schedule.DateOnly(requested)
		req.RequestedDelivery = &d
	}

	for {
		spec, more, err := runLineForm()
		if err != nil {
			return req, err
		}
		req.Lines = append(req.Lines, spec)
		if !more {
			return req, nil
		}
	}
}

// runClearConfirm asks before emptying the order book.
func runClearConfirm() (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove every order line?").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(shopfloorHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// runLineForm collects a single order line and whether to add another.
func runLineForm() (contract.LineSpec, bool, error) {
	var materialStr, structureStr, piecesStr, glassStr string
	more := false

	form := huh.NewForm(
		huh.NewGroup(
			materialSelect(&materialStr),
			structureSelect(&structureStr),
			huh.NewInput().
				Title("Pieces").
				Placeholder("0").
				Value(&piecesStr).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Glass units").
				Placeholder("0").
				Value(&glassStr).
				Validate(validateNonNegativeInt),
			huh.NewConfirm().
				Title("Add another line?").
				Affirmative("Yes").
				Negative("No").
				Value(&more),
		),
	).WithTheme(shopfloorHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return contract.LineSpec{}, false, err
	}

	spec := contract.LineSpec{
		Material:  domain.Material(materialStr),
		Structure: domain.StructureType(structureStr),
	}
	if piecesStr != "" {
		spec.Pieces, _ = strconv.Atoi(piecesStr)
	}
	if glassStr != "" {
		spec.GlassUnits, _ = strconv.Atoi(glassStr)
	}
	return spec, more, nil
}
