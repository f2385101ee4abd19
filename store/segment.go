package store

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/yanyiwu/gojieba"
)

// dictHostProbe memoizes the reachability probe for the process lifetime:
// once a run has established the dictionary host is unreachable, every
// later Open() in the same process (e.g. one per test in a suite) skips
// straight past the timeout instead of re-probing.
var dictHostProbe struct {
	once sync.Once
	err  error
}

// sampleCorpus is a small bundle of everyday Chinese sentences segmented at
// seed time via gojieba to surface realistic multi-character phrases beyond
// the hand-curated seedPhrases list above, mirroring the teacher's
// GoJiebaProvider segmentation step (lang/zho/gojieba.go's jieba.Cut call)
// applied once to a bundled corpus instead of arbitrary translation input.
const sampleCorpus = `
你好朋友今天天气很好我们一起去学校学习
老师在工作中国北京是首都我的朋友是学生
谢谢你的电脑和手机今天晚上我们去吃饭
他说的话我听不懂这个工作很有意思
`

// jiebaDictFiles are the dictionary files gojieba needs, with their expected
// sizes, matching lang/zho/gojieba.go's dictFiles table.
var jiebaDictFiles = []struct {
	name string
	size int64
}{
	{"jieba.dict.utf8", 5079385},
	{"hmm_model.utf8", 519568},
	{"user.dict.utf8", 49},
	{"idf.utf8", 6083765},
	{"stop_words.utf8", 8987},
}

const jiebaDictBaseURL = "https://raw.githubusercontent.com/yanyiwu/gojieba/v1.4.6/deps/cppjieba/dict/"

var jiebaHTTPClient = &http.Client{Timeout: 8 * time.Second}

// segmentSampleCorpus runs gojieba over sampleCorpus, downloading its
// dictionary files into dictDir on first use, and returns an occurrence
// count per multi-character word it recognizes. Any failure (offline,
// partial download) is returned to the caller, who treats segmentation as
// an optional seeding enrichment rather than a hard dependency: seedPhrases
// alone already covers every syllable with a singleton phrase.
func segmentSampleCorpus(dictDir string) (map[string]int, error) {
	if err := os.MkdirAll(dictDir, 0o755); err != nil {
		return nil, fmt.Errorf("create jieba dict dir: %w", err)
	}
	if err := ensureJiebaDictionaries(dictDir); err != nil {
		return nil, fmt.Errorf("fetch jieba dictionaries: %w", err)
	}

	jieba := gojieba.NewJieba(
		filepath.Join(dictDir, "jieba.dict.utf8"),
		filepath.Join(dictDir, "hmm_model.utf8"),
		filepath.Join(dictDir, "user.dict.utf8"),
		filepath.Join(dictDir, "idf.utf8"),
		filepath.Join(dictDir, "stop_words.utf8"),
	)
	defer jieba.Free()

	counts := map[string]int{}
	for _, line := range strings.Split(sampleCorpus, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, word := range jieba.Cut(line, true) {
			if len([]rune(word)) < 2 {
				continue
			}
			counts[word]++
		}
	}
	return counts, nil
}

// ensureJiebaDictionaries downloads any missing dictionary file into dictDir.
func ensureJiebaDictionaries(dictDir string) error {
	allExist := true
	for _, df := range jiebaDictFiles {
		if _, err := os.Stat(filepath.Join(dictDir, df.name)); os.IsNotExist(err) {
			allExist = false
			break
		}
	}
	if allExist {
		return nil
	}
	// Probe reachability with a short timeout before committing to five
	// separate downloads: seeding must stay fast on an offline machine
	// rather than waiting out a full per-file timeout five times over.
	// Memoized so repeated Open() calls in one process (e.g. a test suite)
	// don't each re-pay the probe timeout.
	dictHostProbe.once.Do(func() { dictHostProbe.err = probeDictHost() })
	if dictHostProbe.err != nil {
		return fmt.Errorf("dictionary host unreachable: %w", dictHostProbe.err)
	}
	ctx := context.Background()
	for _, df := range jiebaDictFiles {
		dest := filepath.Join(dictDir, df.name)
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		if err := downloadJiebaFile(ctx, jiebaDictBaseURL+df.name, dest); err != nil {
			return fmt.Errorf("download %s: %w", df.name, err)
		}
	}
	return nil
}

func probeDictHost() error {
	conn, err := net.DialTimeout("tcp", "raw.githubusercontent.com:443", 1500*time.Millisecond)
	if err != nil {
		return err
	}
	return conn.Close()
}

func downloadJiebaFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := jiebaHTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	tmp := destPath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		out.Close()
		os.Remove(tmp)
	}()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, destPath)
}
