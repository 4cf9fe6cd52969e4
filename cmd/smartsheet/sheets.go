package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ukaji3/smartsheet-go/internal/cache"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/output"
)

var (
	outputPath  string
	pretty      bool
	useCache    bool
	offline     bool
	sheetByName bool
	multiInfo   bool
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List accessible sheets",
		Args:  cobra.NoArgs,
		RunE:  runSheets,
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newClient()
	if err != nil {
		return err
	}
	list, err := client.ListSheets(ctx, smartsheet.ListSheetsParams{IncludeAll: smartsheet.Bool(true)})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACCESS\tMODIFIED")
	for _, s := range list.Data {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.AccessLevel, relativeTime(s.ModifiedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%s sheets\n", humanize.Comma(int64(list.TotalCount)))
	return nil
}

func newSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet <id>",
		Short: "Fetch a sheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheet,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Store the fetched sheet in the snapshot cache")
	cmd.Flags().BoolVar(&offline, "offline", false, "Read the sheet from the snapshot cache only")
	cmd.Flags().BoolVar(&sheetByName, "by-name", false, "Treat the argument as a sheet name")
	cmd.Flags().BoolVar(&multiInfo, "multi-contact", false, "Include multi-contact object values")
	return cmd
}

func runSheet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheet, err := loadSheet(ctx, args[0])
	if err != nil {
		return err
	}
	data, err := output.SheetToJSON(sheet, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(ctx, outputPath, data)
}

// loadSheet resolves ref to a sheet, honoring the --cache and --offline
// flags. Commands without those flags always fetch.
func loadSheet(ctx context.Context, ref string) (*models.Sheet, error) {
	if offline || useCache {
		db, err := requireCache()
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if offline {
			return loadCached(ctx, db, ref)
		}
		sheet, err := fetchSheet(ctx, ref)
		if err != nil {
			return nil, err
		}
		if err := db.Save(ctx, sheet); err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "cached sheet", "sheet_id", sheet.ID, "version", sheet.Version)
		return sheet, nil
	}
	return fetchSheet(ctx, ref)
}

func fetchSheet(ctx context.Context, ref string) (*models.Sheet, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	if sheetByName {
		return client.GetSheetByName(ctx, ref)
	}
	id, err := parseID(ref)
	if err != nil {
		return nil, err
	}
	if multiInfo {
		return client.GetSheetWithMultiContactInfo(ctx, id)
	}
	return client.GetSheet(ctx, id, smartsheet.GetSheetParams{})
}

func loadCached(ctx context.Context, db *cache.DB, ref string) (*models.Sheet, error) {
	id, err := parseID(ref)
	if err != nil {
		return nil, err
	}
	sheet, fetchedAt, err := db.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("sheet %d: %w", id, err)
	}
	logger.InfoContext(ctx, "using cached sheet", "sheet_id", id, "fetched", humanize.Time(fetchedAt))
	return sheet, nil
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns <sheet-id>",
		Short: "List the columns of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runColumns,
	}
}

func runColumns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheetID, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	cols, err := client.ListColumns(ctx, sheetID, smartsheet.ListColumnsParams{IncludeAll: smartsheet.Bool(true)})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tID\tTITLE\tTYPE")
	for _, c := range cols.Data {
		title := c.Title
		if c.Primary {
			title += " *"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", c.Index, c.ID, title, c.Type)
	}
	return w.Flush()
}

func newAttachmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attachments <sheet-id> [attachment-id]",
		Short: "List attachments, or print the download URL of one",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runAttachments,
	}
}

func runAttachments(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheetID, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	if len(args) == 2 {
		attachmentID, err := parseID(args[1])
		if err != nil {
			return err
		}
		att, err := client.GetAttachment(ctx, sheetID, attachmentID)
		if err != nil {
			return err
		}
		fmt.Println(att.URL)
		return nil
	}

	list, err := client.ListAttachments(ctx, sheetID)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tCREATED")
	for _, a := range list.Data {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.AttachmentType, humanize.Bytes(a.SizeInKB*1024), relativeTime(a.CreatedAt))
	}
	return w.Flush()
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the snapshot cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List cached sheets",
			Args:  cobra.NoArgs,
			RunE:  runCacheList,
		},
		&cobra.Command{
			Use:   "drop <sheet-id>",
			Short: "Remove a cached sheet",
			Args:  cobra.ExactArgs(1),
			RunE:  runCacheDrop,
		},
	)
	return cmd
}

func runCacheList(cmd *cobra.Command, args []string) error {
	db, err := requireCache()
	if err != nil {
		return err
	}
	defer db.Close()

	sums, err := db.List(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION\tROWS\tFETCHED")
	for _, s := range sums {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			s.ID, s.Name, s.Version, humanize.Comma(int64(s.RowCount)), humanize.Time(s.FetchedAt))
	}
	return w.Flush()
}

func runCacheDrop(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	db, err := requireCache()
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Delete(cmd.Context(), id)
}

func requireCache() (*cache.DB, error) {
	db, err := openCache()
	if err != nil {
		return nil, err
	}
	if db == nil {
		return nil, errors.New("no cache configured: set SMARTSHEET_CACHE_PATH or cache.path")
	}
	return db, nil
}

// relativeTime renders an API timestamp as "3 days ago", falling back to
// the raw text when it does not parse.
func relativeTime(ts string) string {
	if ts == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}
