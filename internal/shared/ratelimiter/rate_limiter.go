package ratelimiter

import (
	"fmt"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter は、直近 period 内の呼び出し回数を maxCalls 以下に制限します。
// 呼び出しのタイムスタンプ履歴をスライディングウィンドウとして保持し、
// 上限に達した場合は空きが出るまで呼び出し元をブロックします。
//
// 注意: 強制待機が発生した後は履歴を全消去してウィンドウを最初からやり直します。
// 期限切れエントリのみを削除する方式ではないため、待機直後は再び maxCalls 回まで
// 連続呼び出しが可能です（リファレンス実装と同じ挙動を意図的に維持）。
type RateLimiter struct {
	maxCalls int           // ウィンドウ内で許可する最大呼び出し数
	period   time.Duration // スライディングウィンドウの長さ
	mu       sync.Mutex
	calls    []time.Time // 呼び出し時刻の履歴（挿入順 = 時系列順）
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// maxCalls と period はいずれも正の値でなければなりません。
func NewRateLimiter(maxCalls int, period time.Duration) (*RateLimiter, error) {
	if maxCalls <= 0 {
		return nil, fmt.Errorf("ratelimiter: maxCalls must be positive, got %d", maxCalls)
	}
	if period <= 0 {
		return nil, fmt.Errorf("ratelimiter: period must be positive, got %v", period)
	}
	return &RateLimiter{
		maxCalls: maxCalls,
		period:   period,
	}, nil
}

// WaitIfNeeded はレートリミットの上限に達しているかを確認し、必要であれば待機します。
// 判定・待機・記録の全手順を単一のロック下で実行するため、並行呼び出しは
// 到着順に直列化されます。エラーは返さず、純粋な遅延としてのみ振る舞います。
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// ウィンドウ外の呼び出し履歴を削除
	kept := rl.calls[:0]
	for _, c := range rl.calls {
		if c.After(now.Add(-rl.period)) {
			kept = append(kept, c)
		}
	}
	rl.calls = kept

	// 上限に達していれば、最古の呼び出しがウィンドウを抜けるまで待機
	if len(rl.calls) >= rl.maxCalls {
		wait := rl.period - now.Sub(rl.calls[0])
		if wait > 0 {
			time.Sleep(wait)
			// 待機後は履歴をリセットし、ウィンドウを最初からやり直す
			rl.calls = rl.calls[:0]
		}
	}

	// 今回の呼び出しを記録
	rl.calls = append(rl.calls, time.Now())
}
