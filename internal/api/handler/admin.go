package handler

// View data for the generic admin list/edit templates. Every admin entity
// handler renders through these so the back-office stays one pair of
// templates.

type adminListRow struct {
	ID    string
	Cells []string
}

type adminListData struct {
	Title     string
	Base      string
	Columns   []string
	Rows      []adminListRow
	CanDelete bool
}

type adminField struct {
	Label   string
	Name    string
	Type    string
	Value   string
	Checked bool
}

type adminEditData struct {
	Title  string
	Action string
	Fields []adminField
}
