package sheet_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/objkit/selector"
	"github.com/npillmayer/objkit/selector/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestSheetAddRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "objkit.sheet")
	defer teardown()
	//
	s := sheet.New()
	if !s.Empty() {
		t.Fatalf("expected new sheet to be empty")
	}
	nav := selector.Combine(selector.Element("ul").Class("nav"), ">", selector.Element("li"))
	if err := s.Add(nav, sheet.Decl("margin-top", "15px"), sheet.Important("color", "red")); err != nil {
		t.Fatal(err)
	}
	rules := s.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	r := rules[0]
	if r.Selector() != "ul.nav > li" {
		t.Errorf("expected prelude 'ul.nav > li', is %q", r.Selector())
	}
	if r.Value("margin-top") != "15px" {
		t.Errorf("expected margin-top = 15px, is %q", r.Value("margin-top"))
	}
	if !r.IsImportant("color") || r.IsImportant("margin-top") {
		t.Errorf("expected only color to be !important")
	}
	if len(s.RulesFor(nav)) != 1 {
		t.Errorf("expected to find rule for %q", nav)
	}
	t.Logf("sheet =\n%s", s.String())
	if !strings.Contains(s.String(), "ul.nav > li") {
		t.Errorf("expected rendered sheet to contain selector")
	}
}

func TestSheetRejectsBrokenSelector(t *testing.T) {
	s := sheet.New()
	if err := s.Add(selector.ID("a").ID("b"), sheet.Decl("color", "red")); err == nil {
		t.Errorf("expected broken selector to be rejected")
	}
	if !s.Empty() {
		t.Errorf("expected sheet to remain empty")
	}
}

func TestSheetParseAndAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "objkit.sheet")
	defer teardown()
	//
	s, err := sheet.Parse(`p { margin: 0; } div.x > span { color: blue !important; }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Rules()) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(s.Rules()))
	}
	props := s.Rules()[0].Properties()
	if len(props) != 1 || props[0] != "margin" {
		t.Errorf("expected properties [margin], have %v", props)
	}
	other := sheet.New()
	_ = other.Add(selector.Element("h1"), sheet.Decl("font-size", "2em"))
	s.AppendRules(other)
	if len(s.Rules()) != 3 {
		t.Errorf("expected 3 rules after append, have %d", len(s.Rules()))
	}
	if len(s.RulesFor(selector.Element("h1"))) != 1 {
		t.Errorf("expected appended rule for h1")
	}
}

const styledHTML = `<html><head><style>li.active { color: red; }</style></head>
<body><ul><li>one</li><li class="active">two</li></ul>
<style>ul > li { margin: 0; }</style></body></html>`

func TestExtractStyleElementsAndSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "objkit.sheet")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(styledHTML))
	if err != nil {
		t.Fatal(err)
	}
	sheets := sheet.ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style sheets, have %d", len(sheets))
	}
	r := sheets[0].Rules()[0]
	nodes, err := sheets[0].Select(doc, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 || nodes[0].FirstChild.Data != "two" {
		t.Errorf("expected 'li.active' to select the second list item, have %v", nodes)
	}
	nodes, err = sheets[1].Select(doc, sheets[1].Rules()[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Errorf("expected 'ul > li' to select 2 nodes, have %d", len(nodes))
	}
}
