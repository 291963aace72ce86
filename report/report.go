// Package report prints the courses that fulfill several requirements at once.
package report

import (
	"fmt"
	"io"

	"github.com/brequin/brequin/audit/requirements"
)

const DefaultMinimum = 2

// Duplicates returns, in course order, every course that fulfills at least
// minimum requirements
func Duplicates(index requirements.Index, minimum int) []requirements.Course {
	var duplicates []requirements.Course
	for _, course := range index.Courses() {
		if index[course].Len() >= minimum {
			duplicates = append(duplicates, course)
		}
	}
	return duplicates
}

func Print(w io.Writer, index requirements.Index, registry requirements.Registry, minimum int, quiet bool) error {
	for _, course := range Duplicates(index, minimum) {
		if quiet {
			if _, err := fmt.Fprintln(w, course); err != nil {
				return err
			}
			continue
		}

		header := course.String()
		if description := registry[course]; description != "" {
			header += " - " + description
		}
		if _, err := fmt.Fprintf(w, "%v:\n", header); err != nil {
			return err
		}

		for _, label := range index[course].Sorted() {
			if _, err := fmt.Fprintf(w, "\t%v\n", label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
