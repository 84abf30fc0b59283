package quote

import (
	"errors"
	"slices"
)

var ErrLineNotFound = errors.New("line not found")

// Draft is the quote being assembled. It is mutable until built.
type Draft struct {
	ClientName  string `json:"clientName"`
	ProjectName string `json:"projectName"`
	Notes       string `json:"notes"`
	Lines       []Line `json:"lines"`
}

func (d *Draft) AddLine(l Line) {
	d.Lines = append(d.Lines, l)
}

// LinePatch carries the editable fields of a line; nil means unchanged.
type LinePatch struct {
	Quantity *int      `json:"quantity,omitempty"`
	Discount *Discount `json:"discount,omitempty"`
}

func (d *Draft) UpdateLine(lineID string, p LinePatch) (Line, error) {
	i := d.index(lineID)
	if i < 0 {
		return Line{}, ErrLineNotFound
	}
	if p.Quantity != nil {
		// Invalid quantities fall back to 1.
		q := *p.Quantity
		if q < 1 {
			q = 1
		}
		d.Lines[i].Quantity = q
	}
	if p.Discount != nil {
		disc := *p.Discount
		if !disc.Valid() {
			disc.Kind = d.Lines[i].Discount.Kind
		}
		d.Lines[i].Discount = disc
	}
	return d.Lines[i], nil
}

func (d *Draft) RemoveLine(lineID string) error {
	i := d.index(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	d.Lines = slices.Delete(d.Lines, i, i+1)
	return nil
}

func (d *Draft) index(lineID string) int {
	return slices.IndexFunc(d.Lines, func(l Line) bool { return l.LineID == lineID })
}

// FromQuote copies a saved quote back into an editable draft.
func FromQuote(q Quote) Draft {
	return Draft{
		ClientName:  q.ClientName,
		ProjectName: q.ProjectName,
		Notes:       q.Notes,
		Lines:       slices.Clone(q.Lines),
	}
}
