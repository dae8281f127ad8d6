package assocarray

import (
	"fmt"
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/internal/model"
	"github.com/gostonefire/assocarray/internal/utils"
	"io"
	"strings"
)

// PrintContents - Writes every slot of the table to w, one line per slot, each line prefixed by tag.
// Keys are rendered as characters if fully printable, else as hex.
func (A *AssociativeArray[V]) PrintContents(w io.Writer, tag string) (err error) {
	if A.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%sDumping aarray of %d entries:\n", tag, len(A.slots))
	for i, slot := range A.slots {
		_, _ = fmt.Fprintf(&sb, "%s  ", tag)
		switch slot.State {
		case model.SlotUsed:
			_, _ = fmt.Fprintf(&sb, "%d : in use : '%s'\n", i, utils.PrintableKey(slot.Key))
		case model.SlotEmpty:
			_, _ = fmt.Fprintf(&sb, "%d : empty (NULL)\n", i)
		case model.SlotDeleted:
			_, _ = fmt.Fprintf(&sb, "%d : empty (deleted - was '%s')\n", i, utils.PrintableKey(slot.Key))
		default:
			_, _ = fmt.Fprintf(&sb, "%d : invalid validity state %d\n", i, slot.State)
		}
	}

	_, err = io.WriteString(w, sb.String())
	if err != nil {
		err = fmt.Errorf("error while writing table contents: %w", err)
	}

	return
}

// PrintSummary - Writes the number of entries, the strategies in use and the accumulated costs to w
func (A *AssociativeArray[V]) PrintSummary(w io.Writer) (err error) {
	info := A.Info()

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Associative array contains %d entries in a table of %d size\n", info.Entries, info.Capacity)
	_, _ = fmt.Fprintf(&sb, "Strategies used: '%s' hash, '%s' secondary hash and '%s' probing\n",
		info.PrimaryHash, info.SecondaryHash, info.Probing)
	sb.WriteString("Costs accrued due to probing:\n")
	_, _ = fmt.Fprintf(&sb, "  Insertion : %d\n", info.Cost.Insert)
	_, _ = fmt.Fprintf(&sb, "  Search    : %d\n", info.Cost.Search)
	_, _ = fmt.Fprintf(&sb, "  Deletion  : %d\n", info.Cost.Delete)

	_, err = io.WriteString(w, sb.String())
	if err != nil {
		err = fmt.Errorf("error while writing table summary: %w", err)
	}

	return
}
