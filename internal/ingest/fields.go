package ingest

import "strings"

// Record is the typed intermediate shape of one resolved row. Raw sheet rows
// never travel past ResolveFields; everything downstream works against these
// ten semantic fields. Values are kept as raw cell strings — coercion happens
// at the point of use (a LINE id may arrive in the price column).
type Record struct {
	Name           string
	Category       string
	Price          string
	Description    string
	Image          string
	OptionGroup    string
	OptionChoice   string
	OptionModifier string
	OptionHeader   string
	OptionChoices  string
}

// fieldSpec lists acceptable header spellings for one semantic field.
// Exclusions stop cross-field bleed on partial matches: an "Option Name"
// column must never be mistaken for the item name column.
type fieldSpec struct {
	synonyms   []string
	exclusions []string
}

var (
	nameField = fieldSpec{
		// "menu"/"item" in both languages: a sheet headed "Menu | Price"
		// passes header detection and must also resolve item names. The
		// exclusions keep "Option Name" and "Menu Image" columns out.
		synonyms:   []string{"name", "ชื่อ", "เมนู", "รายการ", "menu", "item"},
		exclusions: []string{"option", "choice", "price", "img", "image", "group", "header"},
	}
	categoryField = fieldSpec{
		synonyms: []string{"category", "หมวด", "ประเภท"},
	}
	priceField = fieldSpec{
		synonyms:   []string{"price", "ราคา", "cost"},
		exclusions: []string{"option", "modifier", "choice", "extra"},
	}
	descriptionField = fieldSpec{
		synonyms: []string{"description", "desc", "detail", "รายละเอียด"},
	}
	imageField = fieldSpec{
		synonyms:   []string{"image", "img", "photo", "picture", "รูป"},
		exclusions: []string{"option"},
	}
	optionGroupField = fieldSpec{
		synonyms: []string{"option group", "option_group", "optiongroup", "กลุ่มตัวเลือก"},
	}
	optionChoiceField = fieldSpec{
		synonyms:   []string{"option name", "option_name", "choice name", "choice_name", "ตัวเลือกย่อย"},
		exclusions: []string{"group", "header", "price"},
	}
	optionModifierField = fieldSpec{
		synonyms: []string{"price modifier", "price_modifier", "modifier", "เพิ่มราคา"},
	}
	optionHeaderField = fieldSpec{
		synonyms: []string{"option header", "option_header", "optionheader", "หัวข้อตัวเลือก"},
	}
	optionChoicesField = fieldSpec{
		// The "name" exclusion keeps row-based choice-name columns
		// ("Choice Names") from being consumed as a comma list; authors
		// who want the list encoding get "Options"/"Choices"/"Choice List".
		synonyms:   []string{"options", "choices", "choice list", "ตัวเลือก"},
		exclusions: []string{"group", "header", "modifier", "name"},
	}
)

// ResolveFields maps one raw row onto the fixed Record shape using the
// sheet's header row.
func ResolveFields(headers, row []string) Record {
	return Record{
		Name:           resolveValue(headers, row, nameField),
		Category:       resolveValue(headers, row, categoryField),
		Price:          resolveValue(headers, row, priceField),
		Description:    resolveValue(headers, row, descriptionField),
		Image:          resolveValue(headers, row, imageField),
		OptionGroup:    resolveValue(headers, row, optionGroupField),
		OptionChoice:   resolveValue(headers, row, optionChoiceField),
		OptionModifier: resolveValue(headers, row, optionModifierField),
		OptionHeader:   resolveValue(headers, row, optionHeaderField),
		OptionChoices:  resolveValue(headers, row, optionChoicesField),
	}
}

// resolveValue returns the cell best representing the field, or "".
// Exact synonym matches always beat partial ones: the synonym list is walked
// first, returning on the first spelling that equals any column header.
// Only then are containing-substring matches considered, column by column,
// filtered through the exclusion list.
func resolveValue(headers, row []string, spec fieldSpec) string {
	for _, syn := range spec.synonyms {
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), syn) {
				return cellAt(row, i)
			}
		}
	}

	for i, h := range headers {
		lh := strings.ToLower(strings.TrimSpace(h))
		if lh == "" {
			continue
		}
		for _, syn := range spec.synonyms {
			if strings.Contains(lh, syn) && !containsAny(lh, spec.exclusions) {
				return cellAt(row, i)
			}
		}
	}

	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// cellAt tolerates ragged rows from the decoder.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
