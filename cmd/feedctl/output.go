package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"community-feed/internal/common/pagination"
	"community-feed/internal/domain/entity"
	"community-feed/internal/utils/text"
)

// excerptRunes bounds the article text shown under each title in text output.
const excerptRunes = 80

func validFormat(f string) bool {
	switch f {
	case "text", "json", "yaml":
		return true
	}
	return false
}

// printer renders command results in the selected format.
type printer struct {
	w      io.Writer
	format string
	page   pagination.Params
}

func (p printer) encode(v any) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", p.format)
}

func (p printer) records(records []entity.ArticleFeedRecord) error {
	if records == nil {
		records = []entity.ArticleFeedRecord{}
	}
	var meta *pagination.Metadata
	if p.page.Enabled() {
		cut := pagination.Paginate(records, p.page)
		if p.format != "text" {
			return p.encode(cut)
		}
		records, meta = cut.Data, &cut.Pagination
	}
	if p.format != "text" {
		return p.encode(records)
	}

	offset := 0
	if meta != nil {
		offset = pagination.CalculateOffset(meta.Page, meta.Limit)
	}
	if len(records) == 0 {
		if _, err := fmt.Fprintln(p.w, "No articles."); err != nil {
			return err
		}
	}
	for i, r := range records {
		if err := p.writeRecord(offset+i+1, r); err != nil {
			return err
		}
	}
	if meta != nil {
		_, err := fmt.Fprintf(p.w, "-- page %d/%d, %d total --\n", meta.Page, meta.TotalPages, meta.Total)
		return err
	}
	return nil
}

func (p printer) writeRecord(n int, r entity.ArticleFeedRecord) error {
	byline := r.Username
	if byline == "" {
		byline = fmt.Sprintf("user %d", r.WriterID)
	}
	if _, err := fmt.Fprintf(p.w, "%d. [%d] %s\n   by @%s on %s, %d views\n",
		n, r.ArticleID, r.Title, byline, r.CreatedAt.Format("2006-01-02 15:04"), r.Views); err != nil {
		return err
	}
	if r.Text != "" {
		if _, err := fmt.Fprintf(p.w, "   %s\n", text.Excerpt(r.Text, excerptRunes)); err != nil {
			return err
		}
	}
	if len(r.Categories) > 0 {
		names := make([]string, len(r.Categories))
		for j, c := range r.Categories {
			names[j] = c.Name
		}
		if _, err := fmt.Fprintf(p.w, "   categories: %s\n", strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

type outcomeOutput struct {
	Outcome string `json:"outcome" yaml:"outcome"`
}

func (p printer) outcome(o entity.LinkOutcome) error {
	if p.format == "text" {
		_, err := fmt.Fprintln(p.w, o.String())
		return err
	}
	return p.encode(outcomeOutput{Outcome: o.String()})
}

type removedOutput struct {
	Removed bool `json:"removed" yaml:"removed"`
}

func (p printer) removed(removed bool) error {
	if p.format == "text" {
		msg := "removed"
		if !removed {
			msg = "not linked"
		}
		_, err := fmt.Fprintln(p.w, msg)
		return err
	}
	return p.encode(removedOutput{Removed: removed})
}
