package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"kasra-bnpl/internal/usecase/interfaces"
)

var (
	ErrMissingLedgerEndpoint = errors.New("missing LEDGER_ENDPOINT")

	// ErrLedgerTimeout marks a Record call that exceeded its deadline, as
	// opposed to the ledger rejecting the event or the caller cancelling.
	ErrLedgerTimeout = errors.New("ledger record timed out")
)

// FileServiceRecorder writes ledger events to a file-service HTTP bridge:
// each event becomes one immutable file, and the bridge answers with the
// new file id.

type FileServiceRecorder struct {
	client   *http.Client
	endpoint string
}

var _ interfaces.ILedgerRecorder = (*FileServiceRecorder)(nil)

func NewFileServiceRecorder(endpoint string, timeout time.Duration) (*FileServiceRecorder, error) {
	if endpoint == "" {
		log.Printf("[ledger][recorder] missing LEDGER_ENDPOINT")
		return nil, ErrMissingLedgerEndpoint
	}
	return &FileServiceRecorder{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}, nil
}

type fileServiceResponse struct {
	FileID string `json:"fileId"`
}

func (r *FileServiceRecorder) Record(ctx context.Context, event interfaces.LedgerEvent) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	log.Printf("[ledger][recorder] record start type=%q agreement_id=%s payload_len=%d", event.Type, event.AgreementID, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			// Caller cancellation and deadline expiry surface as-is so the
			// use case can tell them apart from a hard ledger failure.
			log.Printf("[ledger][recorder] record aborted agreement_id=%s err=%v", event.AgreementID, ctxErr)
			return "", ctxErr
		}
		log.Printf("[ledger][recorder] record failed agreement_id=%s err=%v", event.AgreementID, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[ledger][recorder] record rejected agreement_id=%s status=%d", event.AgreementID, resp.StatusCode)
		return "", fmt.Errorf("ledger bridge returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var parsed fileServiceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.FileID == "" {
		log.Printf("[ledger][recorder] unusable bridge response agreement_id=%s body=%q", event.AgreementID, raw)
		return "", fmt.Errorf("ledger bridge response has no fileId")
	}

	log.Printf("[ledger][recorder] record success agreement_id=%s file_id=%s", event.AgreementID, parsed.FileID)
	return parsed.FileID, nil
}
