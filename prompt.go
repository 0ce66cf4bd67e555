package insertgen

import (
	"fmt"
	"math/rand/v2"
)

// promptTemplates are the instruction phrasings. Each takes the inserted
// symbol and the 1-indexed position, in that order.
var promptTemplates = []string{
	"Insert symbol %s at position %d in the sequence. The video shows the new symbol fading in above the target position, then sliding down while other symbols shift to make room.",
	"Add symbol %s at position %d of the sequence. Animate the symbol appearing above the insertion point and moving into place as the existing symbols adjust their positions.",
	"Place symbol %s at position %d in the symbol sequence. The insertion is shown by the new symbol materializing above the target location and descending into position while subsequent symbols shift right.",
	"Insert the symbol %s at position %d. Show the symbol fading in above the sequence, sliding down to its position, and the remaining symbols shifting to accommodate the new addition.",
}

// prompt formats an instruction for inserting symbol at the 1-indexed
// position, using a template picked by the task's random source.
func prompt(rng *rand.Rand, symbol string, position int) string {
	tmpl := promptTemplates[rng.IntN(len(promptTemplates))]
	return fmt.Sprintf(tmpl, symbol, position)
}
