package logging

import (
	"github.com/sirupsen/logrus"
)

// OperationWrapper runs a store operation with timing and field collection,
// logging start, completion and failure under the operation name.
func OperationWrapper(
	operationName string,
	log *logrus.Logger,
	operation func(logData *LogData) error,
) error {
	logData := NewLogData(log)

	endTimer := logData.AddTiming("duration")
	err := operation(logData)
	endTimer()

	if err != nil {
		logData.Log().WithError(err).Errorf("Operation.%v.Error", operationName)
		return err
	}

	logData.Log().Infof("Operation.%v.Complete", operationName)
	return nil
}
