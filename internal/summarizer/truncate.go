package summarizer

// Truncate caps text at ceiling characters (runes). When it cuts, the result
// is trimmed back to the last newline inside the kept part, provided that
// newline sits at or past half the ceiling. A ceiling <= 0 disables the cap.
func Truncate(text string, ceiling int) string {
	if ceiling <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= ceiling {
		return text
	}

	cut := runes[:ceiling]
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] != '\n' {
			continue
		}
		if 2*i >= ceiling {
			cut = cut[:i]
		}
		break
	}

	return string(cut)
}
