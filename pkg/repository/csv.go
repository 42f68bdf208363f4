package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
)

// manifestColumns is the number of meaningful columns: site URL, group name,
// permission level, directory group name, in that order.
const manifestColumns = 4

// CSV implements ManifestSource over a comma-delimited UTF-8 file
type CSV struct {
	path string
}

// NewCSV creates a CSV manifest source for the given file path
func NewCSV(path string) interfaces.ManifestSource {
	return &CSV{path: path}
}

// Load reads and parses the whole manifest. Field meaning is positional, not
// header-based; an optional header row is detected and skipped. Load may be
// called again and yields the same rows.
func (c *CSV) Load(ctx context.Context) ([]model.ManifestRow, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open manifest file", goerr.V("path", c.path))
	}
	defer f.Close()

	rows, err := parseManifest(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse manifest file", goerr.V("path", c.path))
	}
	return rows, nil
}

func parseManifest(r io.Reader) ([]model.ManifestRow, error) {
	reader := csv.NewReader(r)
	// Rows are validated by position, not by a fixed field count
	reader.FieldsPerRecord = -1

	var rows []model.ManifestRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, goerr.Wrap(err, "malformed CSV record", goerr.V("line", line))
		}

		if line == 1 && isHeaderRow(record) {
			continue
		}

		if len(record) < manifestColumns {
			return nil, goerr.New("row has fewer than four columns",
				goerr.V("line", line),
				goerr.V("columns", len(record)))
		}

		rows = append(rows, model.ManifestRow{
			Site:               types.SiteURL(strings.TrimSpace(record[0])),
			GroupName:          strings.TrimSpace(record[1]),
			PermissionLevel:    types.PermissionLevel(strings.TrimSpace(record[2])),
			DirectoryGroupName: strings.TrimSpace(record[3]),
			Line:               line,
		})
	}

	if len(rows) == 0 {
		return nil, model.ErrManifestEmpty
	}
	return rows, nil
}

// isHeaderRow treats the first row as a header when its site column is
// non-empty but does not look like a URL. Headers only label columns; field
// meaning stays positional. A blank site column is a data row so that the
// controller can count it as skipped.
func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.TrimSpace(record[0])
	return first != "" && !strings.Contains(first, "://")
}
