// Package listing turns the page, perPage, orderBy and filter query
// parameters of a list endpoint into a backend-neutral Query, and shapes
// fetched rows into a Page.
//
// Filter grammar: field[:operator]:value[,field[:operator]:value...]
// where operator is one of eq, like, gt, gte, lt, lte. A two-token clause
// is an equality; the values true and false are coerced to booleans.
// Clauses combine with AND. OrderBy grammar: field[:asc|desc].
package listing
