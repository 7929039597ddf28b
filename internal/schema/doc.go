// Package schema provides the Prisma schema integrity check.
//
// The check is a simulation: it reports a fixed set of results for the
// expenses data model (User -> Expenses relation, the DRAFT/SUBMITTED/APPROVED
// state enum and the Decimal price column) and never reads the schema file.
// The path only labels the report. Real relationship validation is out of
// scope for this tool.
package schema
