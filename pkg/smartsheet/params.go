package smartsheet

import (
	"net/url"
	"strconv"
	"strings"
)

// Level selects how complex objects (multi-contact, multi-picklist) are
// returned. Level 0 returns them as plain text.
type Level uint8

const (
	LevelText Level = iota
	LevelMultiContact
	LevelMultiPicklist
)

// Include and exclude flags for the sheet, row and column endpoints.
const (
	IncludeAttachments       = "attachments"
	IncludeColumns           = "columns"
	IncludeColumnType        = "columnType"
	IncludeDiscussions       = "discussions"
	IncludeFilters           = "filters"
	IncludeFormat            = "format"
	IncludeObjectValue       = "objectValue"
	IncludeRowPermalink      = "rowPermalink"
	IncludeRowWriterInfo     = "rowWriterInfo"
	IncludeWriterInfo        = "writerInfo"
	IncludeCrossSheetRefs    = "crossSheetReferences"
	IncludeFilterDefinitions = "filterDefinitions"
	IncludeGanttConfig       = "ganttConfig"
	IncludeOwnerInfo         = "ownerInfo"
	IncludeProofs            = "proofs"
	IncludeSource            = "source"
	IncludeSheetVersion      = "sheetVersion"
	ExcludeLinkInFromCell    = "linkInFromCellDetails"
	ExcludeLinksOutToCells   = "linksOutToCellsDetails"
	ExcludeNonexistentCells  = "nonexistentCells"
	ExcludeFilteredOutRows   = "filteredOutRows"
)

// query collects optional query parameters.
type query url.Values

func (q query) list(key string, values []string) {
	if len(values) > 0 {
		url.Values(q).Set(key, strings.Join(values, ","))
	}
}

func (q query) ids(key string, ids []uint64) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	url.Values(q).Set(key, strings.Join(parts, ","))
}

func (q query) str(key, value string) {
	if value != "" {
		url.Values(q).Set(key, value)
	}
}

func (q query) flag(key string, value *bool) {
	if value != nil {
		url.Values(q).Set(key, strconv.FormatBool(*value))
	}
}

func (q query) uint(key string, value uint64) {
	if value > 0 {
		url.Values(q).Set(key, strconv.FormatUint(value, 10))
	}
}

func (q query) level(value *Level) {
	if value != nil {
		url.Values(q).Set("level", strconv.Itoa(int(*value)))
	}
}

// Bool returns a pointer to b, for optional parameters.
func Bool(b bool) *bool {
	return &b
}

// LevelOf returns a pointer to l, for optional parameters.
func LevelOf(l Level) *Level {
	return &l
}

// ListSheetsParams are the query parameters of ListSheets.
type ListSheetsParams struct {
	Include       []string
	IncludeAll    *bool
	ModifiedSince string
	Page          uint64
	PageSize      uint64
}

func (p ListSheetsParams) values() url.Values {
	q := query{}
	q.list("include", p.Include)
	q.flag("includeAll", p.IncludeAll)
	q.str("modifiedSince", p.ModifiedSince)
	q.uint("page", p.Page)
	q.uint("pageSize", p.PageSize)
	return url.Values(q)
}

// GetSheetParams are the query parameters of GetSheet.
type GetSheetParams struct {
	Include           []string
	Exclude           []string
	RowIDs            []uint64
	RowNumbers        []uint64
	ColumnIDs         []uint64
	RowsModifiedSince string
	Level             *Level
	Page              uint64
	PageSize          uint64
}

func (p GetSheetParams) values() url.Values {
	q := query{}
	q.list("include", p.Include)
	q.list("exclude", p.Exclude)
	q.ids("rowIds", p.RowIDs)
	q.ids("rowNumbers", p.RowNumbers)
	q.ids("columnIds", p.ColumnIDs)
	q.str("rowsModifiedSince", p.RowsModifiedSince)
	q.level(p.Level)
	q.uint("page", p.Page)
	q.uint("pageSize", p.PageSize)
	return url.Values(q)
}

// GetRowParams are the query parameters of GetRow.
type GetRowParams struct {
	Include []string
	Exclude []string
	Level   *Level
}

func (p GetRowParams) values() url.Values {
	q := query{}
	q.list("include", p.Include)
	q.list("exclude", p.Exclude)
	q.level(p.Level)
	return url.Values(q)
}

// RowWriteParams are the query parameters of AddRows and UpdateRows.
type RowWriteParams struct {
	AllowPartialSuccess *bool
	OverrideValidation  *bool
}

func (p RowWriteParams) values() url.Values {
	q := query{}
	q.flag("allowPartialSuccess", p.AllowPartialSuccess)
	q.flag("overrideValidation", p.OverrideValidation)
	return url.Values(q)
}

// ListColumnsParams are the query parameters of ListColumns.
type ListColumnsParams struct {
	Include    []string
	IncludeAll *bool
	Level      *Level
	Page       uint64
	PageSize   uint64
}

func (p ListColumnsParams) values() url.Values {
	q := query{}
	q.list("include", p.Include)
	q.flag("includeAll", p.IncludeAll)
	q.level(p.Level)
	q.uint("page", p.Page)
	q.uint("pageSize", p.PageSize)
	return url.Values(q)
}
