package Trees

import "github.com/sirupsen/logrus"

// Log receives the structural events of every tree in this package at debug
// level. Raise its level to trace removals and rebalances.
var Log = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()
