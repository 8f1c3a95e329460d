package solver

// Score returns the feedback Wordle would show for guess against answer.
// It is the standard two-pass algorithm:
//
// Pass 1:
//   - Mark exact matches Confirmed.
//   - Count the remaining (non-confirmed) answer letters.
//
// Pass 2:
//   - For each other guess letter: Present if an unused copy remains, else Absent.
//
// Both words must satisfy ValidWord.
func Score(guess, answer string) (Feedback, error) {
	var fb Feedback
	if !ValidWord(guess) || !ValidWord(answer) {
		return fb, ErrInvalidWord
	}

	var counts [alphabetSize]int
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			fb[i] = MarkConfirmed
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkConfirmed {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			fb[i] = MarkPresent
			counts[j]--
		} else {
			fb[i] = MarkAbsent
		}
	}
	return fb, nil
}
