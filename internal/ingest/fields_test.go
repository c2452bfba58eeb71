package ingest

import "testing"

func TestResolveFieldsExactBeatsPartial(t *testing.T) {
	// "Item Name" partially matches the name field, but the exact "Name"
	// column must win regardless of column order.
	headers := []string{"Item Name", "Name", "Price"}
	row := []string{"wrong", "Bibimbap", "150"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Bibimbap" {
		t.Fatalf("expected exact column to win, got %q", rec.Name)
	}
}

func TestResolveFieldsExclusionsPreventBleed(t *testing.T) {
	// Without an item-name column, "Option Name" must not be mistaken for
	// the name even though it contains "name".
	headers := []string{"Category", "Option Name", "Price"}
	row := []string{"Main", "Extra Pork", "150"}

	rec := ResolveFields(headers, row)
	if rec.Name != "" {
		t.Fatalf("expected no name, got %q", rec.Name)
	}
	if rec.OptionChoice != "Extra Pork" {
		t.Fatalf("expected option choice %q, got %q", "Extra Pork", rec.OptionChoice)
	}
}

func TestResolveFieldsPartialMatch(t *testing.T) {
	headers := []string{"Menu Item Name", "Base Price (THB)", "Img URL"}
	row := []string{"Tteokbokki", "89", "https://example.com/t.jpg"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Tteokbokki" {
		t.Fatalf("name: got %q", rec.Name)
	}
	if rec.Price != "89" {
		t.Fatalf("price: got %q", rec.Price)
	}
	if rec.Image != "https://example.com/t.jpg" {
		t.Fatalf("image: got %q", rec.Image)
	}
}

func TestResolveFieldsMenuHeaderServesAsName(t *testing.T) {
	// A sheet headed "Menu | Price" passes header detection, so the Menu
	// column must resolve as the item name too.
	headers := []string{"Menu", "Price"}
	row := []string{"Bibimbap", "150"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Bibimbap" {
		t.Fatalf("a column headed Menu must resolve as the item name, got %q", rec.Name)
	}
	if rec.Price != "150" {
		t.Fatalf("price: got %q", rec.Price)
	}
}

func TestResolveFieldsItemHeaderServesAsName(t *testing.T) {
	headers := []string{"Item", "Menu Image"}
	row := []string{"Bibimbap", "https://example.com/b.jpg"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Bibimbap" {
		t.Fatalf("name: got %q", rec.Name)
	}
	// "Menu Image" must stay an image column despite containing "menu"
	if rec.Image != "https://example.com/b.jpg" {
		t.Fatalf("image: got %q", rec.Image)
	}
}

func TestResolveFieldsNameBeatsMenuWhenBothPresent(t *testing.T) {
	headers := []string{"Menu", "Name", "Price"}
	row := []string{"Lunch Set", "Bibimbap", "150"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Bibimbap" {
		t.Fatalf("the Name column must outrank Menu, got %q", rec.Name)
	}
}

func TestResolveFieldsChoiceListHeader(t *testing.T) {
	headers := []string{"Name", "Option Header", "Choice List"}
	row := []string{"Tteokbokki", "Spice Level", "Mild, Hot"}

	rec := ResolveFields(headers, row)
	if rec.OptionChoices != "Mild, Hot" {
		t.Fatalf("choice list: got %q", rec.OptionChoices)
	}
	if rec.OptionChoice != "" {
		t.Fatalf("a comma-list column must not resolve as a row-based choice, got %q", rec.OptionChoice)
	}
}

func TestResolveFieldsPriceModifierDoesNotLeakIntoPrice(t *testing.T) {
	headers := []string{"Name", "Price Modifier"}
	row := []string{"Bibimbap", "20"}

	rec := ResolveFields(headers, row)
	if rec.Price != "" {
		t.Fatalf("price should be absent, got %q", rec.Price)
	}
	if rec.OptionModifier != "20" {
		t.Fatalf("modifier: got %q", rec.OptionModifier)
	}
}

func TestResolveFieldsThaiHeaders(t *testing.T) {
	headers := []string{"หมวด", "ชื่อ", "ราคา", "รายละเอียด"}
	row := []string{"จานหลัก", "ข้าวผัดกิมจิ", "120", "เผ็ดนิดๆ"}

	rec := ResolveFields(headers, row)
	if rec.Category != "จานหลัก" || rec.Name != "ข้าวผัดกิมจิ" || rec.Price != "120" || rec.Description != "เผ็ดนิดๆ" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestResolveFieldsRaggedRow(t *testing.T) {
	headers := []string{"Name", "Price", "Description"}
	row := []string{"Kimbap"}

	rec := ResolveFields(headers, row)
	if rec.Name != "Kimbap" {
		t.Fatalf("name: got %q", rec.Name)
	}
	if rec.Price != "" || rec.Description != "" {
		t.Fatalf("missing cells must resolve empty: %+v", rec)
	}
}

func TestResolveFieldsUnknownHeaders(t *testing.T) {
	headers := []string{"A", "B", "C"}
	row := []string{"1", "2", "3"}

	rec := ResolveFields(headers, row)
	if rec != (Record{}) {
		t.Fatalf("expected empty record, got %+v", rec)
	}
}
