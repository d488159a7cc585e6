package translation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// AzureAPIVersion is the Translator REST API version
const AzureAPIVersion = "3.0"

type azureRequestItem struct {
	Text string `json:"text"`
}

type azureResponseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// AzureTranslator calls the Azure Translator REST API
type AzureTranslator struct {
	endpoint string
	key      string
	region   string

	http       *resty.Client
	newTraceID func() string
}

// NewAzureTranslator creates a translator for the given endpoint and
// subscription. The HTTP client has no timeout.
func NewAzureTranslator(endpoint, key, region string) *AzureTranslator {
	return &AzureTranslator{
		endpoint:   endpoint,
		key:        key,
		region:     region,
		http:       resty.New(),
		newTraceID: uuid.NewString,
	}
}

// Name returns the backend name
func (t *AzureTranslator) Name() string {
	return "azure"
}

// Translate sends text as a single item and returns the first translation
func (t *AzureTranslator) Translate(ctx context.Context, text string) (string, error) {
	var result []azureResponseItem

	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-version": AzureAPIVersion,
			"from":        SourceLanguage,
			"to":          TargetLanguage,
		}).
		SetHeader("Ocp-Apim-Subscription-Key", t.key).
		SetHeader("Ocp-Apim-Subscription-Region", t.region).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-ClientTraceId", t.newTraceID()).
		SetBody([]azureRequestItem{{Text: text}}).
		SetResult(&result).
		Post(strings.TrimRight(t.endpoint, "/") + "/translate")
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.String(),
		}
	}

	if len(result) == 0 || len(result[0].Translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return result[0].Translations[0].Text, nil
}
