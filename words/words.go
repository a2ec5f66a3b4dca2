// Package words supplies the human-readable text the generator needs:
// a title word list fetched over HTTP and composer names from embedded
// lists. Failures never abort generation; callers fall back to fixed
// placeholders.
package words

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultWordListURL is a plain-text list with one word per line.
const DefaultWordListURL = "https://www.mit.edu/~ecprice/wordlist.10000"

// Source provides candidate title words.
type Source interface {
	Words() ([]string, error)
}

// Remote fetches a newline-separated word list over HTTP.
type Remote struct {
	URL    string
	Client *http.Client
}

// NewRemote returns a Remote with a bounded request timeout.
func NewRemote(url string) *Remote {
	if url == "" {
		url = DefaultWordListURL
	}
	return &Remote{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Words downloads and splits the word list.
func (r *Remote) Words() ([]string, error) {
	resp, err := r.Client.Get(r.URL)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve word list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("word list request returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read word list: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(body), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list at %v is empty", r.URL)
	}
	return words, nil
}

// List is a fixed in-memory word source, used in tests and as an
// offline fallback.
type List []string

func (l List) Words() ([]string, error) {
	if len(l) == 0 {
		return nil, fmt.Errorf("empty word list")
	}
	return l, nil
}

// FirstNames and LastNames feed composer-name generation.
var FirstNames = []string{
	"Ada", "Arvo", "Bela", "Clara", "Dmitri", "Eleanor", "Erik", "Fanny",
	"Gustav", "Hildegard", "Igor", "Johann", "Klara", "Leos", "Maurice",
	"Nadia", "Olivier", "Pauline", "Ruth", "Sofia", "Toru", "Unsuk",
	"Viktor", "Witold",
}

var LastNames = []string{
	"Abrams", "Birtwistle", "Carter", "Dutilleux", "Eastman", "Feldman",
	"Gubaidulina", "Hovhaness", "Ives", "Janacek", "Kurtag", "Ligeti",
	"Monk", "Nancarrow", "Oliveros", "Partch", "Reich", "Saariaho",
	"Takemitsu", "Ustvolskaya", "Varese", "Wolfe", "Xenakis", "Zorn",
}
