package candidates

import (
	"context"
	"strings"

	"taginput/internal/debug"
)

// Sources names the configured candidate inputs. Empty fields are skipped.
type Sources struct {
	File     string
	Database string
	Query    string
	Extra    []string

	// Report, when set, is called with each source path before it is read.
	Report func(source string)
}

func (s Sources) report(source string) {
	if s.Report != nil {
		s.Report(source)
	}
}

// Load reads every configured source and merges them: Extra first, then the
// file, then the database.
func Load(ctx context.Context, sources Sources) (Static, error) {
	lists := []Static{NewStatic(sources.Extra...)}

	if path := strings.TrimSpace(sources.File); path != "" {
		sources.report(path)
		fromFile, err := LoadYAML(path)
		if err != nil {
			return nil, err
		}
		debug.Candidates.Logf("loaded %d from %s", len(fromFile), path)
		lists = append(lists, fromFile)
	}

	if path := strings.TrimSpace(sources.Database); path != "" {
		sources.report(path)
		fromDB, err := NewSQLiteSource(path, sources.Query).Load(ctx)
		if err != nil {
			return nil, err
		}
		debug.Candidates.Logf("loaded %d from %s", len(fromDB), path)
		lists = append(lists, fromDB)
	}

	return Merge(lists...), nil
}
