package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

var (
	fieldPolicyOnce sync.Once
	fieldPolicy     *bluemonday.Policy
)

// fieldSanitizer returns the policy applied to every record value before
// it is placed in markup. Record data is plain text, so all tags are
// stripped.
func fieldSanitizer() *bluemonday.Policy {
	fieldPolicyOnce.Do(func() {
		fieldPolicy = bluemonday.StrictPolicy()
	})
	return fieldPolicy
}

func sanitize(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(fieldSanitizer().Sanitize(value))
}

// RenderHTML extracts the records from decoded data and renders them as
// HTML cards, returning the fragment and the number of records. If data is
// not a sequence it returns "" together with model.ErrNotACollection;
// callers treat the empty string as "nothing to compose".
func RenderHTML(data any) (string, int, error) {
	animals, err := model.ParseCollection(data)
	if err != nil {
		return "", 0, err
	}
	return HTML(animals), len(animals), nil
}

// HTML renders one card per animal, in order, joined by a single newline
// with no leading or trailing separator.
//
// A card looks like:
//
//	<li class="cards__item">
//	  <div class="card__title">Lion</div>
//	  <p class="card__text">
//	    <strong>Diet:</strong> Carnivore<br/>
//	    <strong>Location:</strong> Africa<br/>
//	    <strong>Type:</strong> Mammal
//	  </p>
//	</li>
func HTML(animals []model.Animal) string {
	cards := make([]string, 0, len(animals))
	for _, a := range animals {
		cards = append(cards, Card(a))
	}
	return strings.Join(cards, "\n")
}

// Card renders a single animal. Values are sanitized first, so a value
// that is nothing but markup counts as absent: the title falls back to
// model.UnnamedAnimal and diet, location and type lines appear only when
// something is left, always in that order.
func Card(a model.Animal) string {
	clean := model.Animal{
		Name:     sanitize(a.Name),
		Diet:     sanitize(a.Diet),
		Type:     sanitize(a.Type),
		Location: sanitize(a.Location),
	}

	lines := []string{
		`<li class="cards__item">`,
		`  <div class="card__title">` + clean.Title() + `</div>`,
		`  <p class="card__text">`,
	}

	if clean.Diet != "" {
		lines = append(lines, `    <strong>`+model.LabelDiet+`:</strong> `+clean.Diet+`<br/>`)
	}
	if clean.Location != "" {
		lines = append(lines, `    <strong>`+model.LabelLocation+`:</strong> `+clean.Location+`<br/>`)
	}
	// The last line has no <br/>.
	if clean.Type != "" {
		lines = append(lines, `    <strong>`+model.LabelType+`:</strong> `+clean.Type)
	}

	lines = append(lines, `  </p>`, `</li>`)
	return strings.Join(lines, "\n")
}
