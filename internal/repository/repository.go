package repository

import sq "github.com/Masterminds/squirrel"

// MySQL-style placeholders for every squirrel-built statement.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
