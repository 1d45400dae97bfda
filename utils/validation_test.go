package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func validInput() OrderInput {
	received := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	delivery := received.AddDate(0, 0, 7)
	return OrderInput{
		OrderNumber:       "UJ-2026-001",
		ClientName:        "María Rodríguez",
		ClientPhone:       strPtr("+52 123 456 7890"),
		ClientEmail:       strPtr("maria@ejemplo.com"),
		PieceType:         "Reloj de pulsera",
		Brand:             strPtr("Rolex"),
		Model:             strPtr("Datejust 41"),
		SerialNumber:      strPtr("R-78901234"),
		Description:       strPtr("Cambio de batería y limpieza general"),
		StatusID:          1,
		PriorityID:        2,
		ReceivedDate:      received,
		EstimatedDelivery: &delivery,
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	errs := ValidateOrder(validInput(), false)
	assert.Empty(t, errs)
}

func TestValidateOrder_CollectsAllViolationsAtOnce(t *testing.T) {
	in := validInput()
	in.OrderNumber = ""
	in.ClientName = ""
	in.PieceType = ""
	in.ClientEmail = strPtr("not-an-email")

	errs := ValidateOrder(in, false)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "order_number")
	assert.Contains(t, errs, "client_name")
	assert.Contains(t, errs, "piece_type")
	assert.Contains(t, errs, "client_email")
}

func TestValidateOrder_FieldRules(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*OrderInput)
		expectedField string
	}{
		{
			name:          "order number too long",
			mutate:        func(in *OrderInput) { in.OrderNumber = strings.Repeat("X", 51) },
			expectedField: "order_number",
		},
		{
			name:          "client name too long",
			mutate:        func(in *OrderInput) { in.ClientName = strings.Repeat("a", 101) },
			expectedField: "client_name",
		},
		{
			name:          "whitespace-only client name",
			mutate:        func(in *OrderInput) { in.ClientName = "   " },
			expectedField: "client_name",
		},
		{
			name:          "piece type too long",
			mutate:        func(in *OrderInput) { in.PieceType = strings.Repeat("a", 101) },
			expectedField: "piece_type",
		},
		{
			name:          "brand too long",
			mutate:        func(in *OrderInput) { in.Brand = strPtr(strings.Repeat("a", 51)) },
			expectedField: "brand",
		},
		{
			name:          "model too long",
			mutate:        func(in *OrderInput) { in.Model = strPtr(strings.Repeat("a", 51)) },
			expectedField: "model",
		},
		{
			name:          "serial number too long",
			mutate:        func(in *OrderInput) { in.SerialNumber = strPtr(strings.Repeat("a", 101)) },
			expectedField: "serial_number",
		},
		{
			name:          "description too long",
			mutate:        func(in *OrderInput) { in.Description = strPtr(strings.Repeat("a", 1001)) },
			expectedField: "description",
		},
		{
			name:          "malformed email",
			mutate:        func(in *OrderInput) { in.ClientEmail = strPtr("cliente@") },
			expectedField: "client_email",
		},
		{
			name:          "phone with too few digits",
			mutate:        func(in *OrderInput) { in.ClientPhone = strPtr("12 34 56") },
			expectedField: "client_phone",
		},
		{
			name:          "phone with letters",
			mutate:        func(in *OrderInput) { in.ClientPhone = strPtr("12345abc90") },
			expectedField: "client_phone",
		},
		{
			name: "estimated delivery before received date",
			mutate: func(in *OrderInput) {
				earlier := in.ReceivedDate.AddDate(0, 0, -1)
				in.EstimatedDelivery = &earlier
			},
			expectedField: "estimated_delivery",
		},
		{
			name:          "missing status reference",
			mutate:        func(in *OrderInput) { in.StatusID = 0 },
			expectedField: "status_id",
		},
		{
			name:          "missing priority reference",
			mutate:        func(in *OrderInput) { in.PriorityID = 0 },
			expectedField: "priority_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := ValidateOrder(in, false)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.expectedField)
		})
	}
}

func TestValidateOrder_EditSkipsCreateOnlyFields(t *testing.T) {
	in := validInput()
	in.OrderNumber = ""
	in.StatusID = 0
	in.PriorityID = 0

	errs := ValidateOrder(in, true)
	assert.Empty(t, errs, "edit validation must not check order number or registry references")
}

func TestValidateOrder_OptionalFieldsMayBeAbsent(t *testing.T) {
	in := OrderInput{
		OrderNumber:  "UJ-2026-002",
		ClientName:   "Elena Vargas",
		PieceType:    "Aretes",
		StatusID:     1,
		PriorityID:   1,
		ReceivedDate: time.Now(),
	}

	errs := ValidateOrder(in, false)
	assert.Empty(t, errs)
}

func TestValidateOrder_EstimatedDeliverySameDayAllowed(t *testing.T) {
	in := validInput()
	sameDay := in.ReceivedDate
	in.EstimatedDelivery = &sameDay

	errs := ValidateOrder(in, false)
	assert.Empty(t, errs)
}

func TestValidateNote(t *testing.T) {
	assert.Empty(t, ValidateNote("Cliente solicita limpieza adicional"))
	assert.Contains(t, ValidateNote(""), "description")
	assert.Contains(t, ValidateNote("   \t  "), "description")
	assert.Contains(t, ValidateNote(strings.Repeat("x", 1001)), "description")
	assert.Empty(t, ValidateNote(strings.Repeat("x", 1000)))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"cliente@ejemplo.com", "a.b@c.d.mx", "x_y@dominio.com.mx"}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "sin-arroba", "@dominio.com", "cliente@", "cliente@dominio", "dos@@dominio.com", "con espacios@dominio.com"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"12345678",              // minimum 8 digits
		"123456789012345",       // maximum 15 digits
		"+52 123 456 7890",      // international with spaces
		"(55) 1234-5678",        // parentheses and dash
		"55.1234.5678",          // dots
	}
	for _, p := range valid {
		assert.True(t, IsValidPhone(p), p)
	}

	invalid := []string{
		"1234567",           // 7 digits
		"1234567890123456",  // 16 digits
		"12345abc",          // letters
		"",                  //
		"12+345678",         // plus not leading
	}
	for _, p := range invalid {
		assert.False(t, IsValidPhone(p), p)
	}
}
