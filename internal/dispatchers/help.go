package dispatchers

import (
	"fmt"
	"io"
	"strings"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/phrases"
)

const catalogueNameWidth = 28

// WriteCatalogue prints every builtin command grouped by category, then the
// user-defined commands in file order.
func WriteCatalogue(w io.Writer, table *Table, custom []domain.CommandEntry, styler domain.Styler) error {
	var b strings.Builder

	b.WriteString(styler.Header("AVRORA"))
	b.WriteString(" - ")
	b.WriteString(phrases.AppFullName)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Скажіть %s, а потім команду.\n\n", styler.Accent(fmt.Sprintf("%q", phrases.WakeWord)))

	grouped := make(map[CommandCategory][]Rule)
	for _, r := range table.Rules() {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	for _, cat := range categoryOrder {
		rules := grouped[cat]
		if len(rules) == 0 {
			continue
		}

		b.WriteString(cat.String())
		b.WriteString("\n")
		for _, r := range rules {
			trigger := strings.TrimSpace(r.Triggers[0])
			fmt.Fprintf(&b, "   %s  %s\n", styler.Info(pad(trigger, catalogueNameWidth)), r.Summary)
		}
		b.WriteString("\n")
	}

	b.WriteString("користувацькі команди\n")
	if len(custom) == 0 {
		fmt.Fprintf(&b, "   %s\n", styler.Muted("немає"))
	}
	for _, e := range custom {
		fmt.Fprintf(&b, "   %s  %s\n", styler.Info(pad(e.Pattern, catalogueNameWidth)), styler.Muted(e.Action))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads s to width runes.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
