package http

import explainconfig "github.com/alexandra5000/explain-config"

// FallbackComponents returns the curated table of well-known component
// names per category, used when remote enumeration yields nothing. The
// table is best effort and allowed to drift from upstream reality; it
// only affects fallback coverage, not correctness.
func FallbackComponents() map[explainconfig.ComponentType][]string {
	return map[explainconfig.ComponentType][]string{
		explainconfig.TypeReceiver: {
			"otlpreceiver", "prometheusreceiver", "jaegerreceiver", "zipkinreceiver",
			"filelogreceiver", "syslogreceiver", "fluentforwardreceiver", "kafkareceiver",
			"redisreceiver", "postgresqlreceiver", "mysqlreceiver", "mongodbreceiver",
			"elasticsearchreceiver", "apachereceiver", "nginxreceiver", "hostmetricsreceiver",
			"kubeletstatsreceiver", "k8sclusterreceiver", "k8seventsreceiver", "k8sobjectsreceiver",
			"dockerstatsreceiver", "statsdreceiver", "carbonreceiver", "collectdreceiver",
			"jmxreceiver", "sapmreceiver", "splunkhecreceiver", "wavefrontreceiver",
			"signalfxreceiver", "datadogreceiver", "awsxrayreceiver", "awsecscontainermetricsreceiver",
			"awscloudwatchmetricsreceiver", "azuremonitorreceiver", "googlecloudspannerreceiver",
			"googlecloudpubsubreceiver", "azureeventhubreceiver", "snowflakereceiver",
		},
		explainconfig.TypeProcessor: {
			"batchprocessor", "memorylimiterprocessor", "probabilisticsamplerprocessor",
			"attributesprocessor", "resourceprocessor", "transformprocessor", "filterprocessor",
			"spanprocessor", "metricstransformprocessor", "routingprocessor", "groupbytraceprocessor",
			"cumulativetodeltaprocessor", "deltatorateprocessor", "tail_samplingprocessor",
			"servicegraphprocessor", "spanmetricsprocessor", "k8sattributesprocessor",
			"resourcedetectionprocessor", "redactionprocessor", "groupbyattrsprocessor",
		},
		explainconfig.TypeExporter: {
			"otlpexporter", "otlphttpexporter", "prometheusexporter", "prometheusremotewriteexporter",
			"jaegerexporter", "zipkinexporter", "kafkaexporter", "fileexporter", "loggingexporter",
			"elasticsearchexporter", "splunkhecexporter", "signalfxexporter", "datadogexporter",
			"awsxrayexporter", "awscloudwatchlogsexporter", "awscloudwatchmetricsexporter",
			"googlecloudpubsubexporter", "googlecloudstorageexporter", "azuremonitorexporter",
			"azureeventhubrexporter", "sapmexporter", "wavefrontexporter", "carbonexporter",
			"collectdexporter", "influxdbexporter", "sentryexporter", "newrelicexporter",
		},
		explainconfig.TypeExtension: {
			"healthcheckextension", "pprofextension", "zpagesextension", "bearertokenauthextension",
			"oauth2clientauthextension", "oidcauthextension", "basicauthextension",
			"awsauthextension", "headerssetterextension", "filestorageextension",
			"memoryballastextension", "k8sobserverextension", "hostobserverextension",
		},
	}
}
