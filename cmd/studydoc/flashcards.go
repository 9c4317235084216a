package main

import (
	"fmt"

	"github.com/vvduth/studydoc"
)

// Run executes the flashcards generate command.
func (c *FlashcardsGenerateCmd) Run(deps *Dependencies) error {
	set, err := deps.Tutor.GenerateFlashcards(deps.Ctx, c.ID, c.Count)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created flashcard set %s with %d cards\n", set.ID, len(set.Cards))
	return nil
}

// Run executes the flashcards list command.
func (c *FlashcardsListCmd) Run(deps *Dependencies) error {
	var filter studydoc.FlashcardSetFilter
	if c.Document != "" {
		filter.DocumentID = &c.Document
	}

	sets, err := deps.Flashcards.FindFlashcardSets(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(sets) == 0 {
		fmt.Fprintln(deps.Stdout, "No flashcard sets found. Use 'studydoc flashcards generate' to create one.")
		return nil
	}

	for _, set := range sets {
		reviewed := 0
		for _, card := range set.Cards {
			if card.ReviewCount > 0 {
				reviewed++
			}
		}
		fmt.Fprintf(deps.Stdout, "%s  document %s  %d cards (%d reviewed)  %s\n",
			set.ID, set.DocumentID, len(set.Cards), reviewed, set.CreatedAt.Local().Format(timeFormat))
	}
	return nil
}

// Run executes the flashcards show command.
func (c *FlashcardsShowCmd) Run(deps *Dependencies) error {
	set, err := deps.Flashcards.FindFlashcardSetByID(deps.Ctx, c.SetID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	shown := 0
	for i, card := range set.Cards {
		if c.Starred && !card.Starred {
			continue
		}
		if shown > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		shown++

		star := ""
		if card.Starred {
			star = " *"
		}
		fmt.Fprintf(deps.Stdout, "%d. [%s]%s Q: %s\n", i+1, card.Difficulty, star, card.Question)
		fmt.Fprintf(deps.Stdout, "   A: %s\n", card.Answer)
		if card.ReviewCount > 0 && card.LastReviewedAt != nil {
			fmt.Fprintf(deps.Stdout, "   reviewed %d times, last %s\n", card.ReviewCount, card.LastReviewedAt.Local().Format(timeFormat))
		}
	}

	if shown == 0 {
		fmt.Fprintln(deps.Stdout, "No starred cards in this set.")
	}
	return nil
}

// Run executes the flashcards review command.
func (c *FlashcardsReviewCmd) Run(deps *Dependencies) error {
	set, err := deps.Flashcards.ReviewFlashcard(deps.Ctx, c.SetID, c.Card-1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	card, err := set.Card(c.Card - 1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Card %d reviewed %d times\n", c.Card, card.ReviewCount)
	return nil
}

// Run executes the flashcards star command.
func (c *FlashcardsStarCmd) Run(deps *Dependencies) error {
	set, err := deps.Flashcards.ToggleStar(deps.Ctx, c.SetID, c.Card-1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	card, err := set.Card(c.Card - 1)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}
	if card.Starred {
		fmt.Fprintf(deps.Stdout, "Card %d starred\n", c.Card)
	} else {
		fmt.Fprintf(deps.Stdout, "Card %d unstarred\n", c.Card)
	}
	return nil
}

// Run executes the flashcards delete command.
func (c *FlashcardsDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Flashcards.DeleteFlashcardSet(deps.Ctx, c.SetID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted flashcard set %s\n", c.SetID)
	return nil
}
