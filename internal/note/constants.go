package note

// MaxImportedTitleRunes caps titles derived from imported text.
const MaxImportedTitleRunes = 80
