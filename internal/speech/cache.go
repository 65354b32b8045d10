package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// CachedSpeaker memoizes synthesized audio in an in-process freecache.
// Audio is split into chunks since freecache caps a single entry at 1/1024
// of its size.
type CachedSpeaker struct {
	next      Speaker
	cache     *freecache.Cache
	ttl       int // seconds, 0 means no expiry
	chunkSize int
	maxAudio  int
}

var _ Speaker = (*CachedSpeaker)(nil)

func NewCachedSpeaker(next Speaker, sizeMB int, ttl time.Duration) *CachedSpeaker {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	size := sizeMB * megabyte
	return &CachedSpeaker{
		next:      next,
		cache:     freecache.NewCache(size),
		ttl:       int(ttl / time.Second),
		chunkSize: size/1024 - 128, // room for key and entry header
		maxAudio:  size / 8,
	}
}

func (s *CachedSpeaker) ListVoices(ctx context.Context) ([]Voice, error) {
	return s.next.ListVoices(ctx)
}

func (s *CachedSpeaker) Speak(ctx context.Context, text string, opts Options) (*Playback, error) {
	if strings.TrimSpace(text) == "" {
		return s.next.Speak(ctx, text, opts)
	}

	key := cacheKey(text, opts)
	if audio, contentType, ok := s.load(key); ok {
		log.Tracef("speech cache hit for %s", key[:12])
		p := NewPlayback(io.NopCloser(bytes.NewReader(audio)), contentType, nil)
		p.Cached = true
		return p, nil
	}

	p, err := s.next.Speak(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	audio, err := io.ReadAll(p.Audio)
	closeErr := p.Close()
	if err != nil {
		return nil, fmt.Errorf("read speech audio: %w", err)
	}
	if closeErr != nil {
		log.WithError(closeErr).Debug("close speech stream")
	}

	if err := s.store(key, p.ContentType, audio); err != nil {
		log.Debugf("speech cache skip for %s: %s", key[:12], err)
	}
	return NewPlayback(io.NopCloser(bytes.NewReader(audio)), p.ContentType, nil), nil
}

func (s *CachedSpeaker) load(key string) ([]byte, string, bool) {
	meta, err := s.cache.Get([]byte(key))
	if err != nil {
		return nil, "", false
	}
	contentType, countStr, found := strings.Cut(string(meta), "\n")
	if !found {
		return nil, "", false
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, "", false
	}

	var buf bytes.Buffer
	for i := 0; i < count; i++ {
		chunk, err := s.cache.Get(chunkKey(key, i))
		if err != nil {
			return nil, "", false
		}
		buf.Write(chunk)
	}
	return buf.Bytes(), contentType, true
}

// store writes chunks before the metadata entry so a reader never sees a
// partial set as complete.
func (s *CachedSpeaker) store(key, contentType string, audio []byte) error {
	if len(audio) == 0 {
		return fmt.Errorf("empty audio")
	}
	if len(audio) > s.maxAudio || s.chunkSize <= 0 {
		return freecache.ErrLargeEntry
	}
	count := 0
	for off := 0; off < len(audio); off += s.chunkSize {
		end := min(off+s.chunkSize, len(audio))
		if err := s.cache.Set(chunkKey(key, count), audio[off:end], s.ttl); err != nil {
			return err
		}
		count++
	}
	return s.cache.Set([]byte(key), []byte(contentType+"\n"+strconv.Itoa(count)), s.ttl)
}

func cacheKey(text string, opts Options) string {
	sum := sha256.Sum256([]byte(voiceOrDefault(opts.Voice) + "|" + strconv.FormatFloat(opts.Speed, 'f', -1, 64) + "|" + text))
	return hex.EncodeToString(sum[:])
}

func chunkKey(key string, i int) []byte {
	return []byte(key + ":" + strconv.Itoa(i))
}
