package controller

import (
	"context"
	"log/slog"
	"slices"

	"quotedesk/go_backend/internal/domain/quote"
	"quotedesk/go_backend/internal/persistence"
)

// LineView is a draft line with its computed figures.
type LineView struct {
	quote.Line
	Figures quote.Figures `json:"figures"`
}

// DraftView is the draft as rendered by the UI.
type DraftView struct {
	ClientName     string     `json:"clientName"`
	ProjectName    string     `json:"projectName"`
	Notes          string     `json:"notes"`
	Lines          []LineView `json:"lines"`
	TotalOneTime   float64    `json:"totalOneTime"`
	TotalRecurring float64    `json:"totalRecurring"`
	NextSequenceID string     `json:"nextSequenceId"`
}

// Header holds the draft's free-text fields; nil leaves a field unchanged.
type Header struct {
	ClientName  *string `json:"clientName,omitempty"`
	ProjectName *string `json:"projectName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is the transient message shown after a save.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

type SaveResult struct {
	Quote   quote.Quote         `json:"quote"`
	Outcome persistence.Outcome `json:"outcome"`
	Notice  Notice              `json:"notice"`
}

// view must be called with c.mu held. The next sequence id is recomputed
// from the current history on every call.
func (c *Controller) view() DraftView {
	v := DraftView{
		ClientName:     c.draft.ClientName,
		ProjectName:    c.draft.ProjectName,
		Notes:          c.draft.Notes,
		Lines:          make([]LineView, 0, len(c.draft.Lines)),
		NextSequenceID: quote.NextSequenceID(c.history, c.now()),
	}
	for _, l := range c.draft.Lines {
		v.Lines = append(v.Lines, LineView{Line: l, Figures: quote.LineFigures(l)})
	}
	v.TotalOneTime, v.TotalRecurring = quote.Totals(c.draft.Lines)
	return v
}

func (c *Controller) Draft() DraftView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

// NewDraft discards the current draft and starts an empty one.
func (c *Controller) NewDraft() DraftView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = quote.Draft{}
	return c.view()
}

func (c *Controller) UpdateHeader(h Header) DraftView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h.ClientName != nil {
		c.draft.ClientName = *h.ClientName
	}
	if h.ProjectName != nil {
		c.draft.ProjectName = *h.ProjectName
	}
	if h.Notes != nil {
		c.draft.Notes = *h.Notes
	}
	return c.view()
}

// AddLine snapshots a catalog item into the draft as a new line.
func (c *Controller) AddLine(catalogID string) (LineView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, err := c.catalog.Get(catalogID)
	if err != nil {
		return LineView{}, err
	}
	l := quote.NewLine(it, c.newID())
	c.draft.AddLine(l)
	return LineView{Line: l, Figures: quote.LineFigures(l)}, nil
}

func (c *Controller) UpdateLine(lineID string, p quote.LinePatch) (LineView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, err := c.draft.UpdateLine(lineID, p)
	if err != nil {
		return LineView{}, err
	}
	return LineView{Line: l, Figures: quote.LineFigures(l)}, nil
}

func (c *Controller) RemoveLine(lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.RemoveLine(lineID)
}

// RestoreQuote copies a saved quote into the draft for editing.
func (c *Controller) RestoreQuote(id string) (DraftView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.quoteIndex(id)
	if i < 0 {
		return DraftView{}, ErrQuoteNotFound
	}
	c.draft = quote.FromQuote(c.history[i])
	return c.view(), nil
}

// SaveDraft builds a quote from the draft, writes it to local history and
// then mirrors it to the hosted database and the webhook. The quote stays in
// local history whatever the remote outcome. Validation failures leave all
// state untouched.
func (c *Controller) SaveDraft(ctx context.Context) (SaveResult, error) {
	c.mu.Lock()
	q, err := quote.Build(c.draft, c.history, c.now(), c.newID())
	if err != nil {
		c.mu.Unlock()
		return SaveResult{}, err
	}
	history := append([]quote.Quote{q}, c.history...)
	if err := c.gw.SaveLocal(ctx, persistence.HistoryKey, history); err != nil {
		c.mu.Unlock()
		return SaveResult{}, err
	}
	c.history = history
	c.draft = quote.Draft{}
	c.mu.Unlock()

	// The quote is committed locally; a cancelled request must not abort
	// the mirror or the status write.
	ctx = context.WithoutCancel(ctx)
	remoteOn, webhookOn := c.gw.Configured()
	out := c.gw.Mirror(ctx, q)
	q.SyncStatus = out.Status()

	c.mu.Lock()
	if i := c.quoteIndex(q.ID); i >= 0 {
		c.history = slices.Clone(c.history)
		c.history[i].SyncStatus = q.SyncStatus
		if err := c.gw.SaveLocal(ctx, persistence.HistoryKey, c.history); err != nil {
			slog.Error("sync status not persisted", "quote_id", q.ID, "status", q.SyncStatus, "error", err)
		}
	}
	c.mu.Unlock()

	return SaveResult{Quote: q, Outcome: out, Notice: notice(out, remoteOn || webhookOn)}, nil
}

func notice(out persistence.Outcome, configured bool) Notice {
	switch {
	case out.Status() == quote.Synced:
		return Notice{Kind: NoticeSuccess, Message: "Quote saved and synced"}
	case !configured:
		return Notice{Kind: NoticeInfo, Message: "Quote saved locally"}
	default:
		return Notice{Kind: NoticeError, Message: "Saved locally, sync failed"}
	}
}
