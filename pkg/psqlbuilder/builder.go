package psqlbuilder

import sq "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами $1, $2... для PostgreSQL
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Select создает SELECT-запрос с PostgreSQL плейсхолдерами
func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT-запрос с PostgreSQL плейсхолдерами
func Insert(into string) sq.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE-запрос с PostgreSQL плейсхолдерами
func Update(table string) sq.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE-запрос с PostgreSQL плейсхолдерами
func Delete(from string) sq.DeleteBuilder {
	return builder.Delete(from)
}
