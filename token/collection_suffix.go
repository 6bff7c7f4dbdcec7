package token

import "github.com/Alphish/ston-go/chartype"

// ScanCollectionTypeSuffix scans a `[...]` collection-type suffix.
// requireFull demands at least one CollectionSuffixContinue ('.') between
// the brackets; when false, an immediate `[]` also matches (the short
// form). It returns whether a suffix was recognized; when it returns
// false while requireFull is true, the cursor has consumed only the
// opening '['.
func (t *Tokenizer) ScanCollectionTypeSuffix(requireFull bool) (bool, error) {
	if _, ok := t.TryChartype(chartype.CollectionSuffixBegin); !ok {
		return false, nil
	}

	sawContinue := false
	for {
		if _, ok := t.TryChartype(chartype.CollectionSuffixContinue); ok {
			sawContinue = true
			continue
		}
		break
	}

	if sawContinue {
		if _, err := t.ExpectChartype(chartype.CollectionSuffixEnd); err != nil {
			return false, err
		}
		return true, nil
	}

	if !requireFull {
		if _, ok := t.TryChartype(chartype.CollectionSuffixEnd); ok {
			return true, nil
		}
	}

	return false, nil
}
