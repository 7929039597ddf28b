// Package i18n holds the message catalog for user-facing check output.
//
// French is the default locale: the messages reproduce, byte for byte, the
// strings the project's agent skills have always printed, so existing
// tooling that greps for "Erreur" or "Avertissement" keeps working.
// English is available with --lang en.
//
// The catalog is built with golang.org/x/text/message/catalog and read
// through a *message.Printer, which callers obtain from NewPrinter.
package i18n
