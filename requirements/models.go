package requirements

import (
	"fmt"
	"sort"
	"strings"
)

// Course numbers are kept as strings since some of them are wildcard
// patterns until they are resolved
type Course struct {
	SubjectAreaCode string
	CatalogNumber   string
}

func (c Course) Id() string {
	const idTemplate = "%v#%v"
	return fmt.Sprintf(idTemplate, c.SubjectAreaCode, c.CatalogNumber)
}

func (c Course) String() string {
	return c.SubjectAreaCode + " " + c.CatalogNumber
}

func (c Course) IsWildcard() bool {
	return strings.ContainsAny(c.CatalogNumber, "@:")
}

func (c Course) Less(other Course) bool {
	if c.SubjectAreaCode != other.SubjectAreaCode {
		return c.SubjectAreaCode < other.SubjectAreaCode
	}
	return c.CatalogNumber < other.CatalogNumber
}

// Labels is a set of requirement labels
type Labels map[string]struct{}

func NewLabels(labels ...string) Labels {
	set := make(Labels, len(labels))
	for _, label := range labels {
		set.Add(label)
	}
	return set
}

func (l Labels) Add(label string) {
	l[label] = struct{}{}
}

func (l Labels) Has(label string) bool {
	_, found := l[label]
	return found
}

func (l Labels) Union(other Labels) {
	for label := range other {
		l.Add(label)
	}
}

func (l Labels) Len() int {
	return len(l)
}

func (l Labels) Sorted() []string {
	sorted := make([]string, 0, len(l))
	for label := range l {
		sorted = append(sorted, label)
	}
	sort.Strings(sorted)
	return sorted
}

// Index maps a course to the requirements it fulfills
type Index map[Course]Labels

func (i Index) Add(course Course, label string) {
	labels, found := i[course]
	if !found {
		labels = NewLabels()
		i[course] = labels
	}
	labels.Add(label)
}

func (i Index) Courses() []Course {
	courses := make([]Course, 0, len(i))
	for course := range i {
		courses = append(courses, course)
	}
	sort.Slice(courses, func(a, b int) bool {
		return courses[a].Less(courses[b])
	})
	return courses
}

// Registry maps a course to its description; wildcard entries never have one
type Registry map[Course]string
