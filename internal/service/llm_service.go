package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"ayurrag/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const planSystemInstruction = `You are a highly experienced Ayurvedic physician.
Generate concise, structured, professional treatment plans.`

const reportSystemInstruction = "You are an Ayurvedic wellness coach."

// LLMService wraps the GigaChat API with two tuned generative models
// (treatment plans and progress reports) plus direct REST access for
// embeddings, which the gigago SDK does not cover.
type LLMService struct {
	client      *gigago.Client
	planModel   *gigago.GenerativeModel
	reportModel *gigago.GenerativeModel
	gigaCfg     *config.GigaChatConfig
	ragCfg      *config.RAGConfig
	logger      *zap.Logger
	httpClient  *http.Client
	baseURL     string

	// accessToken is refreshed on 401 while other requests read it.
	mu          sync.Mutex
	accessToken string
}

func (s *LLMService) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *LLMService) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func NewLLMService(gigaCfg *config.GigaChatConfig, ragCfg *config.RAGConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(gigaCfg.Scope),
	}
	if gigaCfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, gigaCfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	// Low temperature keeps plans consistent between requests.
	planModel := client.GenerativeModel(gigaCfg.Model)
	planModel.SystemInstruction = planSystemInstruction
	planModel.Temperature = 0.2
	planModel.MaxTokens = 2000

	reportModel := client.GenerativeModel(gigaCfg.Model)
	reportModel.SystemInstruction = reportSystemInstruction
	reportModel.Temperature = 0.3
	reportModel.MaxTokens = 1000

	httpClient := &http.Client{}
	if gigaCfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	// Embeddings go through the REST API directly and need their own
	// access token.
	accessToken, err := getAccessToken(ctx, gigaCfg, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	return &LLMService{
		client:      client,
		planModel:   planModel,
		reportModel: reportModel,
		gigaCfg:     gigaCfg,
		ragCfg:      ragCfg,
		logger:      logger,
		httpClient:  httpClient,
		accessToken: accessToken,
		// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
		baseURL: "https://gigachat.devices.sberbank.ru/api/v1",
	}, nil
}

// getAccessToken obtains an access token from the GigaChat OAuth
// endpoint. The API key is expected to be Base64-encoded already.
func getAccessToken(ctx context.Context, cfg *config.GigaChatConfig, httpClient *http.Client, logger *zap.Logger) (string, error) {
	oauthURL := "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	rqUID := uuid.New().String()

	formData := url.Values{}
	formData.Set("scope", cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, "POST", oauthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	req.Header.Set("Authorization", "Basic "+cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
			zap.String("rq_uid", rqUID),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}

	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	logger.Info("Access token obtained", zap.Int("expires_in", oauthResp.ExpiresIn))
	return oauthResp.AccessToken, nil
}

// CompletePlan runs the prompt through the plan model and returns the
// trimmed completion text.
func (s *LLMService) CompletePlan(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, s.planModel, prompt)
}

// CompleteReport runs the prompt through the report model.
func (s *LLMService) CompleteReport(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, s.reportModel, prompt)
}

func (s *LLMService) complete(ctx context.Context, model *gigago.GenerativeModel, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// EmbedTexts embeds the texts in order via the GigaChat embeddings
// endpoint. Failures are logged and reported as a nil slice rather
// than an error; callers treat an empty result as "skip this work".
func (s *LLMService) EmbedTexts(ctx context.Context, texts []string) [][]float32 {
	if len(texts) == 0 {
		return nil
	}

	vectors, err := s.embedTexts(ctx, texts)
	if err != nil {
		s.logger.Error("Embedding request failed",
			zap.Int("texts", len(texts)),
			zap.Error(err),
		)
		return nil
	}
	return vectors
}

// EmbedText embeds a single text; nil on failure.
func (s *LLMService) EmbedText(ctx context.Context, text string) []float32 {
	vectors := s.EmbedTexts(ctx, []string{text})
	if len(vectors) == 0 {
		return nil
	}
	return vectors[0]
}

// embedTexts calls POST /embeddings.
// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
func (s *LLMService) embedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	requestBody := map[string]interface{}{
		"model": s.ragCfg.EmbeddingModel,
		"input": texts,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	doRequest := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/embeddings", bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.token())
		return s.httpClient.Do(req)
	}

	resp, err := doRequest()
	if err != nil {
		return nil, fmt.Errorf("failed to request embeddings: %w", err)
	}

	// Token may have expired, refresh once and retry.
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		accessToken, err := getAccessToken(ctx, s.gigaCfg, s.httpClient, s.logger)
		if err != nil {
			return nil, fmt.Errorf("embeddings failed with 401, token refresh also failed: %w", err)
		}
		s.setToken(accessToken)

		resp, err = doRequest()
		if err != nil {
			return nil, fmt.Errorf("failed to request embeddings: %w", err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embeddings failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var embedResp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("failed to decode embeddings response: %w", err)
	}

	if len(embedResp.Data) != len(texts) {
		return nil, fmt.Errorf("embeddings response is incomplete: got %d vectors for %d texts", len(embedResp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, item := range embedResp.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("embeddings response has out-of-range index %d", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}

	return vectors, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
