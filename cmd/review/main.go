// Command review is the editorial CLI over the pending-review queue.
//
// Usage:
//
//	review list              show the queue
//	review approve <slug>    publish an article
//	review reject <slug>     delete an article and drop its queue entry
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"goldbrief/internal/config"
	"goldbrief/internal/domain/entity"
	"goldbrief/internal/infra/store"
	"goldbrief/internal/observability/logging"
	reviewUC "goldbrief/internal/usecase/review"
)

func main() {
	_ = godotenv.Load()

	// Human-facing CLI: plain text logs on stderr, results on stdout.
	slog.SetDefault(logging.NewTextLogger())

	cfg, err := config.LoadPipelineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	content := store.NewContentStore(cfg.ContentDir)
	svc := reviewUC.NewService(content, store.NewQueue(cfg.QueuePath))

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "list":
		if err := runList(svc, content); err != nil {
			fmt.Fprintf(os.Stderr, "list failed: %v\n", err)
			os.Exit(1)
		}
	case "approve", "reject":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "%s requires a <slug> argument\n", cmd)
			usage()
			os.Exit(1)
		}
		slug := os.Args[2]

		var err error
		if cmd == "approve" {
			err = svc.Approve(slug)
		} else {
			err = svc.Reject(slug)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s failed: %v\n", cmd, err)
			os.Exit(1)
		}
		if cmd == "approve" {
			fmt.Printf("approved %s\n", slug)
		} else {
			fmt.Printf("rejected %s\n", slug)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
}

func runList(svc *reviewUC.Service, content *store.ContentStore) error {
	entries, err := svc.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("review queue is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%-16s %s  %s  %q\n",
			e.Status, e.CreatedAt.Format("2006-01-02 15:04"), e.Slug, articleTitle(content, e))
	}
	return nil
}

// articleTitle reads the stored article's own frontmatter title, which may
// differ from the queue entry after manual edits. A missing or unreadable
// file is reported inline rather than failing the listing.
func articleTitle(content *store.ContentStore, e entity.ReviewQueueEntry) string {
	data, err := os.ReadFile(content.Path(e.Slug))
	if err != nil {
		return e.Title + " (file missing)"
	}
	fm, _, err := store.Parse(string(data))
	if err != nil {
		return e.Title
	}
	if title := fm.Scalars["title"]; title != "" {
		return title
	}
	return e.Title
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  review list              show the queue
  review approve <slug>    publish an article
  review reject <slug>     delete an article and drop its queue entry`)
}
