package request

import (
	"errors"
	"strconv"
	"strings"

	"doctor_app/internal/domain/entities"
)

var ErrInvalidPageSize = errors.New("pageSize must be an integer between 1 and 1000")

// PageParams are the optional pagination query parameters. PageSize 0 means
// the caller did not send one.
type PageParams struct {
	PageSize int
	Cursor   string
}

func ParsePageParams(query map[string]string) (PageParams, error) {
	var p PageParams
	if raw := strings.TrimSpace(query["pageSize"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			return PageParams{}, ErrInvalidPageSize
		}
		p.PageSize = n
	}
	p.Cursor = strings.TrimSpace(query["lastEvaluatedKey"])
	return p, nil
}

type PatientListParams struct {
	PageParams
	SortKey   entities.PatientSortKey
	SortOrder entities.SortOrder
}

// ParsePatientListParams reads sortKey, sortOrder and pagination. Values are
// passed through as sent and validated by the use case.
func ParsePatientListParams(query map[string]string) (PatientListParams, error) {
	page, err := ParsePageParams(query)
	if err != nil {
		return PatientListParams{}, err
	}
	return PatientListParams{
		PageParams: page,
		SortKey:    entities.PatientSortKey(strings.TrimSpace(query["sortKey"])),
		SortOrder:  entities.SortOrder(strings.TrimSpace(query["sortOrder"])),
	}, nil
}
