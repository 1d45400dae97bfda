package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/urbina-joyeria/taller-api/models"
)

// FilterAll is the sentinel value that disables a status or priority
// filter. An empty string works the same way.
const FilterAll = "all"

// Sortable columns for the order list.
const (
	SortByReceivedDate = "received_date"
	SortByPriority     = "priority"
	SortByOrderNumber  = "order_number"
)

// ListFilter holds the three independent, conjunctive order-list filters.
type ListFilter struct {
	Search     string // case-insensitive substring over number/client/piece/brand/model
	StatusID   string // registry id as string, or "all"
	PriorityID string // registry id as string, or "all"
}

// SortState tracks the active sort column and direction the way the list
// header behaves: clicking the active column flips direction, clicking a
// different column resets to descending.
type SortState struct {
	Column     string
	Descending bool
}

// Toggle applies a column-header click to the state.
func (s *SortState) Toggle(column string) {
	if s.Column == column {
		s.Descending = !s.Descending
		return
	}
	s.Column = column
	s.Descending = true
}

// FilterOrders returns the orders matching every active filter.
func FilterOrders(orders []models.Order, f ListFilter) []models.Order {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		if term != "" && !matchesSearch(o, term) {
			continue
		}
		if !matchesID(o.StatusID, f.StatusID) {
			continue
		}
		if !matchesID(o.PriorityID, f.PriorityID) {
			continue
		}
		out = append(out, o)
	}

	return out
}

// SortOrders sorts orders in place according to the sort state. Priority
// sorts by weight, received date chronologically, order number lexically.
// The sort is stable so ties keep their original order.
func SortOrders(orders []models.Order, s SortState) {
	less := func(a, b models.Order) bool { return false }

	switch s.Column {
	case SortByReceivedDate:
		less = func(a, b models.Order) bool { return a.ReceivedDate.Before(b.ReceivedDate) }
	case SortByPriority:
		less = func(a, b models.Order) bool { return a.Priority.Weight < b.Priority.Weight }
	case SortByOrderNumber:
		less = func(a, b models.Order) bool { return a.OrderNumber < b.OrderNumber }
	default:
		return
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if s.Descending {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

func matchesSearch(o models.Order, term string) bool {
	fields := []string{o.OrderNumber, o.ClientName, o.PieceType}
	if o.Brand != nil {
		fields = append(fields, *o.Brand)
	}
	if o.Model != nil {
		fields = append(fields, *o.Model)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesID(id uint, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	parsed, err := strconv.ParseUint(filter, 10, 64)
	if err != nil {
		return false
	}
	return uint(parsed) == id
}
