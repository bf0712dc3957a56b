package httpadapter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"adwatch/internal/core/domain"
	"adwatch/internal/core/port"
)

const maxSheetName = 31

var sheetHeader = []string{
	"ad_id", "start_date", "end_date", "duration_days", "active",
	"last_seen", "similarity_hint", "fingerprint", "image_url", "local_path",
}

// fullReportWorkbook renders rep with one sheet per business. An empty
// report gets a single sheet saying so.
func fullReportWorkbook(rep *port.FullReport) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	first := xl.GetSheetName(0)
	if len(rep.Groups) == 0 {
		if err := xl.SetSheetName(first, "No ads"); err != nil {
			return nil, err
		}
		row := []any{"No ads found", rep.PeriodLabel, rep.BusinessName}
		if err := xl.SetSheetRow("No ads", "A1", &row); err != nil {
			return nil, err
		}
		return writeWorkbook(xl)
	}

	used := map[string]bool{}
	for i, g := range rep.Groups {
		name := uniqueSheetName(g.BusinessName, g.BusinessID, used)
		if i == 0 {
			if err := xl.SetSheetName(first, name); err != nil {
				return nil, err
			}
		} else if _, err := xl.NewSheet(name); err != nil {
			return nil, err
		}

		if err := xl.SetSheetRow(name, "A1", &sheetHeader); err != nil {
			return nil, err
		}
		for ri, c := range g.Creatives {
			cell, err := excelize.CoordinatesToCellName(1, ri+2)
			if err != nil {
				return nil, err
			}
			row := creativeRow(c)
			if err = xl.SetSheetRow(name, cell, &row); err != nil {
				return nil, err
			}
		}
	}
	return writeWorkbook(xl)
}

func creativeRow(c domain.AdCreative) []any {
	end, fp := "", ""
	if c.EndDate != nil {
		end = c.EndDate.Format("2006-01-02")
	}
	if c.Fingerprint != nil {
		fp = c.Fingerprint.String()
	}
	return []any{
		c.AdID,
		c.StartDate.Format("2006-01-02"),
		end,
		c.DurationDays,
		c.Active,
		c.LastSeen.Format("2006-01-02"),
		c.SimilarityHint,
		fp,
		c.ImageURL,
		c.LocalPath,
	}
}

func writeWorkbook(xl *excelize.File) ([]byte, error) {
	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uniqueSheetName makes a valid sheet name: no : \ / ? * [ ] characters, no
// leading or trailing apostrophe, at most 31 characters, and not used
// before. Sheet names are compared case-insensitively, so used is keyed by
// the lower-cased name.
func uniqueSheetName(name string, id int64, used map[string]bool) string {
	r := strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")
	base := trimSheetName(truncate(trimSheetName(r.Replace(name)), maxSheetName))
	if base == "" {
		base = "business_" + strconv.FormatInt(id, 10)
	}
	out := base
	for n := 2; used[strings.ToLower(out)]; n++ {
		suffix := "_" + strconv.Itoa(n)
		out = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(out)] = true
	return out
}

func trimSheetName(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\'' || unicode.IsSpace(r)
	})
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
