package localize

// Coalesce implements the row-level merge for flat localized columns: the
// current locale's value when present, else the fallback locale's, else nil.
// A present JSON null counts as absent, matching how nested merges treat
// locale gaps.
func Coalesce(current, fallback any) any {
	if current != nil {
		return current
	}
	if fallback != nil {
		return fallback
	}
	return nil
}

// CoalesceString is Coalesce for flat string columns, where the empty string
// counts as absent.
func CoalesceString(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}
