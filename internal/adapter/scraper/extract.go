package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var libraryIDPattern = regexp.MustCompile(`(?:Ідентифікатор бібліотеки|Library ID):\s*(\d+)`)

// Card is one ad as rendered in the ads library.
type Card struct {
	AdID string
	// Text is the visible text of the card, text nodes joined by spaces.
	Text string
	// ImageURL is the creative image. The first image of a card is the
	// advertiser's avatar, so this is the second one, or empty.
	ImageURL string
}

// ExtractCards finds ad cards in an ads library page. A card is the nearest
// div around the library id that also contains an hr. Only the first card
// of every ad id is returned, in document order.
func ExtractCards(r io.Reader) ([]Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		cards []Card
		seen  = map[string]struct{}{}
	)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			m := libraryIDPattern.FindStringSubmatch(n.Data)
			if m == nil {
				return
			}
			if _, dup := seen[m[1]]; dup {
				return
			}
			if card := cardOf(n); card != nil {
				seen[m[1]] = struct{}{}
				cards = append(cards, Card{
					AdID:     m[1],
					Text:     textOf(card),
					ImageURL: secondImage(card),
				})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return cards, nil
}

func cardOf(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Div && contains(p, atom.Hr) {
			return p
		}
	}
	return nil
}

func contains(n *html.Node, a atom.Atom) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return true
		}
		if contains(c, a) {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func secondImage(n *html.Node) string {
	var imgs []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(imgs) == 2 {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			imgs = append(imgs, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	if len(imgs) < 2 {
		return ""
	}
	for _, a := range imgs[1].Attr {
		if a.Key == "src" {
			return a.Val
		}
	}
	return ""
}
