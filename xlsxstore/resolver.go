package xlsxstore

import "strings"

// Sheet resolution for free-form class labels. Order of precedence:
//
//  1. the configured alias table (label -> sheet name),
//  2. exact match against legacy label variants covering the Hebrew
//     grade-naming quirks of the historic workbooks,
//  3. case/space-insensitive containment in either direction,
//  4. agreement of the first and last normalized characters.
//
// The tail of that list is best-effort matching kept for migration
// compatibility; short or similar labels can mismatch, which is
// accepted. The alias table is the supported long-term answer.
func (s *Store) resolveSheet(sheets []string, grade string) (string, *ClassNotFoundError) {
	if alias, ok := s.aliases[grade]; ok {
		for _, sheet := range sheets {
			if sheet == alias {
				return sheet, nil
			}
		}
	}

	byName := map[string]string{}
	for _, sheet := range sheets {
		byName[sheet] = sheet
	}
	for _, variant := range legacyLabelVariants(grade) {
		if sheet, ok := byName[variant]; ok {
			return sheet, nil
		}
	}

	normGrade := normalizeLabel(grade)
	for _, sheet := range sheets {
		normSheet := normalizeLabel(sheet)
		if normSheet == normGrade ||
			strings.Contains(normSheet, normGrade) ||
			strings.Contains(normGrade, normSheet) {
			return sheet, nil
		}
	}

	gradeRunes := []rune(normGrade)
	for _, sheet := range sheets {
		sheetRunes := []rune(normalizeLabel(sheet))
		if len(gradeRunes) >= 2 && len(sheetRunes) >= 2 &&
			gradeRunes[0] == sheetRunes[0] &&
			gradeRunes[len(gradeRunes)-1] == sheetRunes[len(sheetRunes)-1] {
			return sheet, nil
		}
	}

	return "", &ClassNotFoundError{Grade: grade, Available: sheets}
}

// legacyLabelVariants reproduces the hand-coded variant list of the
// historic workbooks: gershayim insertion, yud-grade renames, and the
// swapped numeral/letter forms of the heh/het class names.
func legacyLabelVariants(grade string) []string {
	variants := []string{
		grade,
		strings.ReplaceAll(grade, "יי", "י\"י"),
		strings.ReplaceAll(grade, "י", "י\""),
		"כיתה " + grade,
		strings.ReplaceAll(grade, "יי", "יב"),
		strings.ReplaceAll(grade, "י", "יא"),
	}
	for _, digit := range []string{"1", "2", "3", "4", "5"} {
		variants = append(variants,
			strings.ReplaceAll(grade, digit+"ה", "ח"+digit),
			strings.ReplaceAll(grade, "ח"+digit, digit+"ה"),
			"כיתה "+strings.ReplaceAll(grade, digit+"ה", "ח"+digit),
		)
	}
	return variants
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), ""))
}

// nameVariants builds the student-name forms tried against sheet rows:
// as given, first/last swapped, and hyphenated in both orders.
func nameVariants(name string) []string {
	trimmed := strings.TrimSpace(name)
	variants := []string{trimmed}
	parts := strings.Split(trimmed, " ")
	if len(parts) == 2 {
		variants = append(variants,
			parts[1]+" "+parts[0],
			parts[0]+"-"+parts[1],
			parts[1]+"-"+parts[0],
		)
	}
	return variants
}

// findStudentRow scans sheet rows for the student, trying every name
// variant. Returns the 0-based row index, or a not-found error carrying
// the first sheet names as diagnostics.
func findStudentRow(rows [][]string, name, grade string) (int, *StudentNotFoundError) {
	variants := nameVariants(name)
	available := []string{}

	for r := dataStartRow - 1; r < len(rows); r++ {
		rowName := strings.TrimSpace(cellAt(rows[r], colName-1))
		if rowName == "" {
			continue
		}
		if len(available) < 20 {
			available = append(available, rowName)
		}
		for _, variant := range variants {
			if rowName == variant {
				return r, nil
			}
		}
	}

	return -1, &StudentNotFoundError{
		Name:              name,
		Grade:             grade,
		TriedNames:        variants,
		AvailableStudents: available,
	}
}
