package xlsxstore

import "fmt"

// ClassNotFoundError means no sheet could be resolved for a class
// label, even after alias and fuzzy matching. Available carries the
// actual sheet names for diagnostics.
type ClassNotFoundError struct {
	Grade     string
	Available []string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("no sheet found for class %q", e.Grade)
}

// StudentNotFoundError means no row matched the student name or any of
// its variants in the resolved sheet.
type StudentNotFoundError struct {
	Name  string
	Grade string

	TriedNames        []string
	AvailableStudents []string
}

func (e *StudentNotFoundError) Error() string {
	return fmt.Sprintf("student %q not found in class %q", e.Name, e.Grade)
}
