package ansi

// reservedKeywords are words that cannot be used as naked identifiers in
// the base dialect. Derived dialects reclassify words between this set and
// unreservedKeywords rather than editing either list in place.
var reservedKeywords = []string{
	"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CREATE",
	"CROSS", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT",
	"EXISTS", "FALSE", "FROM", "FULL", "GROUP", "HAVING", "IF", "IN",
	"INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE",
	"NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "RIGHT", "SELECT", "SET",
	"TABLE", "THEN", "TRUE", "UNION", "UPDATE", "VALUES", "WHEN", "WHERE",
	"WITH",
}

// unreservedKeywords are words with keyword meaning in some context that
// still work as naked identifiers.
var unreservedKeywords = []string{
	"ADD", "BEGIN", "CASCADE", "COLUMN", "COMMIT", "CONDITION", "CONTINUE",
	"CURSOR", "DECLARE", "DEFAULT", "EXIT", "FIRST", "FOUND", "FUNCTION",
	"HANDLER", "IDENTITY", "KEY", "LAST", "LIMIT", "OFFSET", "OPTION",
	"PLAN", "PRINT", "PROCEDURE", "RESTRICT", "ROLLBACK", "SQLEXCEPTION",
	"SQLSTATE", "SQLWARNING", "TOP", "UNDO", "USER", "VALUE", "VERSION",
	"VIEW", "WORK",
}
