package param

import (
	"net/http"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/twitchtv/twirp"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// Binding decode url query into v
func Binding(r *http.Request, v interface{}) error {
	if err := decoder.Decode(v, r.URL.Query()); err != nil {
		return twirp.InvalidArgumentError("query", err.Error())
	}

	return nil
}

// String url param of the matched route
func String(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ProposalID url param {id}, validated as a snapshot proposal id
func ProposalID(r *http.Request) (string, error) {
	id := String(r, "id")
	if hex := strings.TrimPrefix(id, "0x"); hex == "" || !govalidator.IsAlphanumeric(hex) {
		return "", twirp.InvalidArgumentError("id", "invalid proposal id")
	}

	return id, nil
}
