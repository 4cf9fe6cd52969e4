package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/output"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/parser"
)

var (
	findColumn string
	findEq     string
	findNe     string
	firstOnly  bool

	importTab     string
	importColumns []string
	importToTop   bool
	skipLinks     bool
	partial       bool

	ignoreMissing bool
)

func newRowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Find, import and delete rows",
	}

	findCmd := &cobra.Command{
		Use:   "find <sheet-id>",
		Short: "Find rows by a column value",
		Args:  cobra.ExactArgs(1),
		RunE:  runRowsFind,
	}
	findCmd.Flags().StringVarP(&findColumn, "column", "c", "", "Column title to compare")
	findCmd.Flags().StringVar(&findEq, "eq", "", "Match rows whose value equals this")
	findCmd.Flags().StringVar(&findNe, "ne", "", "Match rows whose value differs from this")
	findCmd.Flags().BoolVar(&firstOnly, "first", false, "Print only the first match")
	findCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	findCmd.Flags().BoolVar(&offline, "offline", false, "Search the cached snapshot")
	_ = findCmd.MarkFlagRequired("column")
	findCmd.MarkFlagsMutuallyExclusive("eq", "ne")
	findCmd.MarkFlagsOneRequired("eq", "ne")

	whereCmd := &cobra.Command{
		Use:   "where <sheet-id> <expression>",
		Short: "Find rows matching a boolean expression over column titles",
		Example: `  smartsheet rows where 123 'Score >= 80 && Status != "Done"'
  smartsheet rows where 123 'cells["Due Date"] == nil'`,
		Args: cobra.ExactArgs(2),
		RunE: runRowsWhere,
	}
	whereCmd.Flags().BoolVar(&firstOnly, "first", false, "Print only the first match")
	whereCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	whereCmd.Flags().BoolVar(&offline, "offline", false, "Search the cached snapshot")

	importCmd := &cobra.Command{
		Use:   "import <sheet-id> <input.xlsx>",
		Short: "Add rows from an Excel worksheet",
		Long: `The first non-empty row of the worksheet must hold column titles that
exist in the sheet. Every later non-empty row is added as a new row.`,
		Args: cobra.ExactArgs(2),
		RunE: runRowsImport,
	}
	importCmd.Flags().StringVar(&importTab, "tab", "", "Worksheet to read (default: first)")
	importCmd.Flags().StringSliceVar(&importColumns, "columns", nil, "Only import these column titles")
	importCmd.Flags().BoolVar(&importToTop, "to-top", false, "Insert rows at the top of the sheet")
	importCmd.Flags().BoolVar(&skipLinks, "skip-links", false, "Import hyperlinked cells as plain values")
	importCmd.Flags().BoolVar(&partial, "allow-partial", false, "Keep valid rows when some rows fail")

	deleteCmd := &cobra.Command{
		Use:   "delete <sheet-id> <row-id>...",
		Short: "Delete rows by id",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runRowsDelete,
	}
	deleteCmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "Skip row ids that do not exist")

	cmd.AddCommand(findCmd, whereCmd, importCmd, deleteCmd)
	return cmd
}

func runRowsFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheet, err := loadSheet(ctx, args[0])
	if err != nil {
		return err
	}
	cols := grid.MapperFromSheet(sheet)
	getter := grid.NewRowGetter(sheet.Rows, cols)

	var finder *grid.RowFinder
	if cmd.Flags().Changed("ne") {
		finder, err = getter.WhereNe(findColumn, parser.ParseValue(findNe))
	} else {
		finder, err = getter.WhereEq(findColumn, parser.ParseValue(findEq))
	}
	if err != nil {
		return err
	}

	if firstOnly {
		row, err := finder.First()
		if err != nil {
			return err
		}
		return printRows([]*models.Row{row}, cols)
	}
	return printRows(finder.FindAll(), cols)
}

func runRowsWhere(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheet, err := loadSheet(ctx, args[0])
	if err != nil {
		return err
	}
	cols := grid.MapperFromSheet(sheet)
	finder, err := grid.NewRowGetter(sheet.Rows, cols).Where(args[1])
	if err != nil {
		return err
	}

	if firstOnly {
		row, err := finder.First()
		if err != nil {
			return err
		}
		return printRows([]*models.Row{row}, cols)
	}
	rows, err := finder.FindAll()
	if err != nil {
		return err
	}
	return printRows(rows, cols)
}

func printRows(rows []*models.Row, cols *grid.ColumnMapper) error {
	data, err := output.RowPtrsToJSON(rows, cols, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runRowsImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheetID, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	opts := smartsheet.ImportOptions{
		Tab:       importTab,
		Columns:   importColumns,
		SkipLinks: skipLinks,
		ToTop:     importToTop,
	}
	if partial {
		opts.Params.AllowPartialSuccess = smartsheet.Bool(true)
	}

	res, err := client.ImportXLSX(ctx, sheetID, args[1], opts)
	if err != nil {
		var ie *parser.ImportError
		if errors.As(err, &ie) {
			return fmt.Errorf("import failed at row %d of %q: %w", ie.Row, ie.Sheet, ie.Err)
		}
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Printf("added %d rows (sheet version %d)\n", len(res.Result), res.Version)
	return nil
}

func runRowsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sheetID, err := parseID(args[0])
	if err != nil {
		return err
	}
	ids := make([]uint64, 0, len(args)-1)
	for _, a := range args[1:] {
		id, err := parseID(a)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.DeleteRows(ctx, sheetID, ids, ignoreMissing)
	if err != nil {
		return err
	}
	fmt.Printf("deleted %d rows\n", len(res.Result))
	return nil
}
