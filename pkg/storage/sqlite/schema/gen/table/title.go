package table

import (
	"github.com/go-jet/jet/v2/sqlite"
)

// Title is the movies table. Use WithName for series or a renamed table.
var Title = newTitleTable("", "movies", "")

type titleTable struct {
	sqlite.Table

	// Columns
	ID       sqlite.ColumnInteger
	Title    sqlite.ColumnString
	Year     sqlite.ColumnString
	Watched  sqlite.ColumnBool
	Rating   sqlite.ColumnInteger
	Comments sqlite.ColumnString
	Poster   sqlite.ColumnString
	Summary  sqlite.ColumnString
	Critic   sqlite.ColumnString
	Backdrop sqlite.ColumnString

	AllColumns     sqlite.ColumnList
	MutableColumns sqlite.ColumnList
	DefaultColumns sqlite.ColumnList
}

type TitleTable struct {
	titleTable

	EXCLUDED titleTable
}

// AS creates new TitleTable with assigned alias
func (a TitleTable) AS(alias string) *TitleTable {
	return newTitleTable(a.SchemaName(), a.TableName(), alias)
}

// FromSchema creates new TitleTable with assigned schema name
func (a TitleTable) FromSchema(schemaName string) *TitleTable {
	return newTitleTable(schemaName, a.TableName(), a.Alias())
}

// WithName creates new TitleTable reading from tableName
func (a TitleTable) WithName(tableName string) *TitleTable {
	return newTitleTable(a.SchemaName(), tableName, a.Alias())
}

func newTitleTable(schemaName, tableName, alias string) *TitleTable {
	return &TitleTable{
		titleTable: newTitleTableImpl(schemaName, tableName, alias),
		EXCLUDED:   newTitleTableImpl("", "excluded", ""),
	}
}

func newTitleTableImpl(schemaName, tableName, alias string) titleTable {
	var (
		IDColumn       = sqlite.IntegerColumn("id")
		TitleColumn    = sqlite.StringColumn("title")
		YearColumn     = sqlite.StringColumn("year")
		WatchedColumn  = sqlite.BoolColumn("watched")
		RatingColumn   = sqlite.IntegerColumn("rating")
		CommentsColumn = sqlite.StringColumn("comments")
		PosterColumn   = sqlite.StringColumn("poster")
		SummaryColumn  = sqlite.StringColumn("summary")
		CriticColumn   = sqlite.StringColumn("critic")
		BackdropColumn = sqlite.StringColumn("backdrop")
		allColumns     = sqlite.ColumnList{IDColumn, TitleColumn, YearColumn, WatchedColumn, RatingColumn, CommentsColumn, PosterColumn, SummaryColumn, CriticColumn, BackdropColumn}
		mutableColumns = sqlite.ColumnList{TitleColumn, YearColumn, WatchedColumn, RatingColumn, CommentsColumn, PosterColumn, SummaryColumn, CriticColumn, BackdropColumn}
		defaultColumns = sqlite.ColumnList{WatchedColumn}
	)

	return titleTable{
		Table: sqlite.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		ID:       IDColumn,
		Title:    TitleColumn,
		Year:     YearColumn,
		Watched:  WatchedColumn,
		Rating:   RatingColumn,
		Comments: CommentsColumn,
		Poster:   PosterColumn,
		Summary:  SummaryColumn,
		Critic:   CriticColumn,
		Backdrop: BackdropColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
		DefaultColumns: defaultColumns,
	}
}
