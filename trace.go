// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

import "go.uber.org/zap"

// logger carries diagnostic trace events for suspend/resume boundaries:
// bridge start, completion notification, offload submission and completion,
// task destruction. Nop unless SetLogger installs one.
var logger = zap.NewNop()

// SetLogger installs a trace logger. Passing nil restores the nop logger.
// Install before building chains; the logger is not synchronized against
// in-flight computations.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
