// Package requirements recovers which degree requirements each course
// satisfies from the requirements table of a Degree Works audit.
package requirements

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	requirementRowSelector   = "tr.bgLight0"
	requirementTitleSelector = "td.RuleLabelTitleNeeded"
	adviceDataSelector       = "td.RuleAdviceData"
)

var courseLinkRegexp = regexp.MustCompile(`^javascript:GetCourseInfo\('(.+?)','(.+?)'\)`)

func ParseCourseLink(href string) (Course, bool) {
	submatches := courseLinkRegexp.FindStringSubmatch(href)
	if submatches == nil {
		return Course{}, false
	}
	return Course{SubjectAreaCode: submatches[1], CatalogNumber: submatches[2]}, true
}

func requirementTitle(root *html.Node) (string, bool) {
	titleCell := goquery.NewDocumentFromNode(root).Find(requirementTitleSelector).First()
	if titleCell.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(titleCell.Text()), true
}

// Extract walks the requirement rows top to bottom. Rows without a title
// cell belong to the most recent title above them.
func Extract(document *goquery.Document) (Index, Registry) {
	index := Index{}
	registry := Registry{}
	pending := Index{}

	requirement := ""

	requirementRows := document.Find(requirementRowSelector)
	for _, root := range requirementRows.Nodes {
		if title, found := requirementTitle(root); found {
			requirement = title
		}

		adviceLinks := goquery.NewDocumentFromNode(root).Find(adviceDataSelector).Find("a")
		adviceLinks.Each(func(i int, adviceLink *goquery.Selection) {
			// Links without href are "Except" clauses
			href, exists := adviceLink.Attr("href")
			if !exists {
				return
			}

			course, found := ParseCourseLink(href)
			if !found {
				return
			}

			if course.IsWildcard() {
				pending.Add(course, requirement)
				return
			}

			index.Add(course, requirement)

			if description, exists := adviceLink.Attr("title"); exists {
				registry[course] = description
			}
		})
	}

	index.Resolve(pending)

	return index, registry
}

// Resolve merges every pending wildcard into the concrete courses it
// matches. A wildcard that matches nothing is kept as its own entry.
func (i Index) Resolve(pending Index) {
	orphans := Index{}

	for wildcard, fulfills := range pending {
		consumed := false

		pattern, err := ParsePattern(wildcard.CatalogNumber)
		if err == nil {
			for course, labels := range i {
				if course.SubjectAreaCode != wildcard.SubjectAreaCode || course.IsWildcard() {
					continue
				}
				if pattern.Matches(course.CatalogNumber) {
					labels.Union(fulfills)
					consumed = true
				}
			}
		}

		if !consumed {
			orphans[wildcard] = fulfills
		}
	}

	for wildcard, fulfills := range orphans {
		i[wildcard] = fulfills
	}
}
