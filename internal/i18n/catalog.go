package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	// KeyImgMissingAlt is the message for an <img> without alt.
	KeyImgMissingAlt = "a11y.img_missing_alt"
	// KeyIconButtonMissingLabel is the message for an icon-only <Button> without aria-label.
	KeyIconButtonMissingLabel = "a11y.icon_button_missing_label"
	// KeyHoverWithoutTooltip is the tip for hover: styles without a Tooltip.
	KeyHoverWithoutTooltip = "a11y.hover_without_tooltip"

	// KeySchemaRelations is the Relations status line.
	KeySchemaRelations = "schema.relations"
	// KeySchemaEnums is the Enums status line.
	KeySchemaEnums = "schema.enums"
	// KeySchemaConstraints is the Constraints status line.
	KeySchemaConstraints = "schema.constraints"
)

// DefaultLanguage is used when no language is requested.
var DefaultLanguage = language.French

// ErrUnsupportedLanguage is returned for languages without a translation.
var ErrUnsupportedLanguage = errors.New("unsupported language: use fr or en")

// entries maps each supported language to its translations.
var entries = map[language.Tag]map[string]string{
	language.French: {
		KeyImgMissingAlt:          "Erreur : Balise <img> détectée sans attribut 'alt'.",
		KeyIconButtonMissingLabel: "Avertissement : Bouton iconographique détecté sans 'aria-label'.",
		KeyHoverWithoutTooltip:    "Conseil : Pensez à ajouter un Tooltip pour les actions au survol.",
		KeySchemaRelations:        "Vérification des relations 1:n (User -> Expenses)... OK",
		KeySchemaEnums:            "Validation des états (DRAFT, SUBMITTED, APPROVED)... OK",
		KeySchemaConstraints:      "Vérification des contraintes de prix (Decimal)... OK",
	},
	language.English: {
		KeyImgMissingAlt:          "Error: <img> tag found without an 'alt' attribute.",
		KeyIconButtonMissingLabel: "Warning: icon-only button found without 'aria-label'.",
		KeyHoverWithoutTooltip:    "Tip: consider adding a Tooltip for hover actions.",
		KeySchemaRelations:        "Checking 1:n relations (User -> Expenses)... OK",
		KeySchemaEnums:            "Validating states (DRAFT, SUBMITTED, APPROVED)... OK",
		KeySchemaConstraints:      "Checking price constraints (Decimal)... OK",
	},
}

// messages is the shared catalog. It is read-only after package init.
var messages = mustBuildCatalog()

// mustBuildCatalog builds the catalog from entries and panics on failure,
// which can only happen if an entry is malformed.
func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: invalid catalog entry %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// ParseLanguage resolves a user-supplied language string to a supported tag.
// An empty string selects DefaultLanguage. Region subtags are ignored, so
// "fr-CA" resolves to French and "en-US" to English.
func ParseLanguage(lang string) (language.Tag, error) {
	if lang == "" {
		return DefaultLanguage, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	base, _ := tag.Base()
	switch base.String() {
	case "fr":
		return language.French, nil
	case "en":
		return language.English, nil
	default:
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
}

// NewPrinter returns a printer for the requested language.
func NewPrinter(lang string) (*message.Printer, error) {
	tag, err := ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag, message.Catalog(messages)), nil
}

// DefaultPrinter returns a printer for DefaultLanguage.
func DefaultPrinter() *message.Printer {
	return message.NewPrinter(DefaultLanguage, message.Catalog(messages))
}
