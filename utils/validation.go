package utils

import (
	"regexp"
	"strings"
	"time"
)

// Field length limits shared by the creation and edit flows
const (
	MaxOrderNumberLen  = 50
	MaxClientNameLen   = 100
	MaxPieceTypeLen    = 100
	MaxBrandLen        = 50
	MaxModelLen        = 50
	MaxSerialNumberLen = 100
	MaxDescriptionLen  = 1000
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// characters tolerated in a phone number besides digits
	phonePunctRegex = regexp.MustCompile(`[\s\-.()]`)
	digitsRegex     = regexp.MustCompile(`^[0-9]+$`)
)

// OrderInput carries the user-editable order fields through validation.
// Pointer fields are optional; nil means "not provided".
type OrderInput struct {
	OrderNumber       string
	ClientName        string
	ClientPhone       *string
	ClientEmail       *string
	PieceType         string
	Brand             *string
	Model             *string
	SerialNumber      *string
	Description       *string
	StatusID          uint
	PriorityID        uint
	ReceivedDate      time.Time
	EstimatedDelivery *time.Time
}

// ValidateOrder checks every rule and returns a field -> message map with
// all violations at once. An empty map means the input is valid.
// When forEdit is true, the order number and registry references are
// skipped (they are not editable through the edit form).
func ValidateOrder(in OrderInput, forEdit bool) map[string]string {
	errs := map[string]string{}

	if !forEdit {
		if strings.TrimSpace(in.OrderNumber) == "" {
			errs["order_number"] = "El número de orden es obligatorio"
		} else if len(in.OrderNumber) > MaxOrderNumberLen {
			errs["order_number"] = "El número de orden no puede exceder 50 caracteres"
		}
		if in.StatusID == 0 {
			errs["status_id"] = "Seleccione un estado válido"
		}
		if in.PriorityID == 0 {
			errs["priority_id"] = "Seleccione una prioridad válida"
		}
	}

	if strings.TrimSpace(in.ClientName) == "" {
		errs["client_name"] = "El nombre del cliente es obligatorio"
	} else if len(in.ClientName) > MaxClientNameLen {
		errs["client_name"] = "El nombre del cliente no puede exceder 100 caracteres"
	}

	if strings.TrimSpace(in.PieceType) == "" {
		errs["piece_type"] = "El tipo de pieza es obligatorio"
	} else if len(in.PieceType) > MaxPieceTypeLen {
		errs["piece_type"] = "El tipo de pieza no puede exceder 100 caracteres"
	}

	if in.ClientEmail != nil && *in.ClientEmail != "" && !IsValidEmail(*in.ClientEmail) {
		errs["client_email"] = "El correo electrónico no es válido"
	}

	if in.ClientPhone != nil && *in.ClientPhone != "" && !IsValidPhone(*in.ClientPhone) {
		errs["client_phone"] = "El teléfono debe contener entre 8 y 15 dígitos"
	}

	if in.Brand != nil && len(*in.Brand) > MaxBrandLen {
		errs["brand"] = "La marca no puede exceder 50 caracteres"
	}
	if in.Model != nil && len(*in.Model) > MaxModelLen {
		errs["model"] = "El modelo no puede exceder 50 caracteres"
	}
	if in.SerialNumber != nil && len(*in.SerialNumber) > MaxSerialNumberLen {
		errs["serial_number"] = "El número de serie no puede exceder 100 caracteres"
	}
	if in.Description != nil && len(*in.Description) > MaxDescriptionLen {
		errs["description"] = "La descripción no puede exceder 1000 caracteres"
	}

	if in.EstimatedDelivery != nil && !in.ReceivedDate.IsZero() &&
		in.EstimatedDelivery.Before(truncateToDay(in.ReceivedDate)) {
		errs["estimated_delivery"] = "La fecha estimada de entrega no puede ser anterior a la fecha de recepción"
	}

	return errs
}

// ValidateNote checks a bitácora entry before it is appended.
func ValidateNote(description string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(description) == "" {
		errs["description"] = "La nota no puede estar vacía"
	} else if len(description) > MaxDescriptionLen {
		errs["description"] = "La nota no puede exceder 1000 caracteres"
	}
	return errs
}

// IsValidEmail reports whether s has a local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone applies the canonical phone rule: after removing spaces,
// dashes, dots, parentheses and one leading "+", 8 to 15 digits remain.
func IsValidPhone(s string) bool {
	cleaned := phonePunctRegex.ReplaceAllString(s, "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) < 8 || len(cleaned) > 15 {
		return false
	}
	return digitsRegex.MatchString(cleaned)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
